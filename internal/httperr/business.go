package httperr

import "errors"

// Códigos de negócio estáveis, checáveis por máquina.
const (
	CodeUnauthenticated     = "unauthenticated"
	CodeUnauthorized        = "unauthorized"
	CodeInvalidBooking      = "invalid_booking_request"
	CodeProviderUnavailable = "provider_unavailable"
	CodeServiceNotFound     = "service_not_found"
	CodePastDate            = "past_date"
	CodeSlotTaken           = "slot_taken"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeStoreUnavailable    = "store_unavailable"
)

type BusinessError struct {
	Code   string
	Reason string // sub-motivo de validação, ex: "missing_field:phone"
}

func (e BusinessError) Error() string {
	if e.Reason != "" {
		return e.Code + ": " + e.Reason
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrInvalidBooking(reason string) error {
	return BusinessError{Code: CodeInvalidBooking, Reason: reason}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessReason(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Reason
	}
	return ""
}
