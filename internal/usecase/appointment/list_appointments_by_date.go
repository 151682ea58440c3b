package appointment

import (
	"context"

	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/dto"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	tz   string
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	tz string,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		tz:   tz,
	}
}

// Agenda do dia de um provider, em ordem de horário.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	providerID uint,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := timezone.ParseDate(uc.tz, dateStr); err != nil {
		return nil, httperr.ErrInvalidBooking("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsForProviderDay(ctx, providerID, dateStr)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			Date:            ap.Date,
			Time:            ap.Time,
			Status:          ap.Status,
			ReservationCode: ap.ReservationCode,
			ClientName:      ap.Client.Name,
			ServiceName:     ap.ServiceName,
			Price:           ap.Price,
		})
	}

	return out, nil
}
