package appointment

import "github.com/barberlane/booking-engine/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// ActiveStatuses são os status que ocupam um slot.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(s), nil
	}
	return "", httperr.ErrInvalidBooking("invalid_status:" + s)
}

func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// InitialStatus: reserva de balcão nasce confirmada, autoatendimento
// aguarda confirmação.
func InitialStatus(staffAssisted bool) Status {
	if staffAssisted {
		return StatusConfirmed
	}
	return StatusPending
}
