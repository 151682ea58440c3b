package validators

import (
	"regexp"
	"strings"
	"time"

	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/timezone"
)

var (
	dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeShape = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

const minPhoneDigits = 10

// BookingInput é o pedido antes de tocar o banco. Para reservas de balcão,
// ClientName e ClientEmail são obrigatórios.
type BookingInput struct {
	ProviderID  uint
	ServiceID   uint
	Date        string
	Time        string
	Phone       string
	Payment     string
	TransferRef string

	StaffAssisted bool
	ClientName    string
	ClientEmail   string
}

// ValidateBooking aplica as checagens em ordem fixa; a primeira falha vence.
// Nada aqui muta estado. A existência de provider/serviço é verificada em
// seguida pelo caso de uso, ainda antes de qualquer escrita.
func ValidateBooking(in BookingInput, tz string, now time.Time) error {

	// 1. campos obrigatórios
	for _, f := range []struct {
		name, value string
	}{
		{"date", in.Date},
		{"time", in.Time},
		{"phone", in.Phone},
		{"payment_method", in.Payment},
	} {
		if strings.TrimSpace(f.value) == "" {
			return httperr.ErrInvalidBooking("missing_field:" + f.name)
		}
	}
	if in.ProviderID == 0 {
		return httperr.ErrInvalidBooking("missing_field:provider_id")
	}
	if in.ServiceID == 0 {
		return httperr.ErrInvalidBooking("missing_field:service_id")
	}
	if in.StaffAssisted {
		if strings.TrimSpace(in.ClientName) == "" {
			return httperr.ErrInvalidBooking("missing_field:client_name")
		}
		if strings.TrimSpace(in.ClientEmail) == "" {
			return httperr.ErrInvalidBooking("missing_field:client_email")
		}
		if !IsEmailValid(in.ClientEmail) {
			return httperr.ErrInvalidBooking("invalid_email")
		}
	}

	// 2. telefone
	if countDigits(in.Phone) < minPhoneDigits {
		return httperr.ErrInvalidBooking("phone_too_short")
	}

	// 3. pagamento
	method := domain.PaymentMethod(in.Payment)
	if !method.Valid() {
		return httperr.ErrInvalidBooking("invalid_payment_method")
	}
	if method == domain.PaymentTransfer && strings.TrimSpace(in.TransferRef) == "" {
		return httperr.ErrInvalidBooking("missing_transfer_reference")
	}

	// 4. formatos de data e hora
	if !dateShape.MatchString(in.Date) {
		return httperr.ErrInvalidBooking("invalid_date")
	}
	if _, err := timezone.ParseDate(tz, in.Date); err != nil {
		return httperr.ErrInvalidBooking("invalid_date")
	}
	if !timeShape.MatchString(in.Time) {
		return httperr.ErrInvalidBooking("invalid_time")
	}
	clock, err := time.Parse(timezone.TimeLayout, in.Time)
	if err != nil {
		return httperr.ErrInvalidBooking("invalid_time")
	}
	// a grade de slots é de hora cheia
	if clock.Minute() != 0 {
		return httperr.ErrInvalidBooking("invalid_time")
	}
	start, err := timezone.ParseDateTime(tz, in.Date, in.Time)
	if err != nil {
		return httperr.ErrInvalidBooking("invalid_date")
	}

	// 5. não pode estar no passado
	if start.Before(now) {
		return httperr.ErrBusiness(httperr.CodePastDate)
	}

	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
