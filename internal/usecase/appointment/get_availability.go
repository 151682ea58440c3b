package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/timezone"
)

type GetAvailability struct {
	repo            domain.Repository
	tz              string
	advisoryWeekday int
}

func NewGetAvailability(
	repo domain.Repository,
	tz string,
	advisoryWeekday int,
) *GetAvailability {
	return &GetAvailability{
		repo:            repo,
		tz:              tz,
		advisoryWeekday: advisoryWeekday,
	}
}

// Execute devolve os horários livres do dia. Resultado consultivo: a
// re-checagem autoritativa acontece na criação da reserva.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	providerID uint,
	dateStr string,
) (*domain.Availability, error) {

	date, err := timezone.ParseDate(uc.tz, dateStr)
	if err != nil {
		return nil, httperr.ErrInvalidBooking("invalid_date")
	}

	in := domain.AvailabilityInput{
		ProviderID:      providerID,
		Date:            date,
		AdvisoryWeekday: uc.advisoryWeekday,
	}

	// provider inexistente ou inativo: "nada aberto", não é erro; sem o
	// aviso do dia facultativo, que só faz sentido para provider real
	if _, err := uc.repo.GetActiveProvider(ctx, providerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			in.AdvisoryWeekday = -1
			av := domain.ComputeAvailability(in, nil, nil)
			return &av, nil
		}
		return nil, err
	}

	hours, err := uc.repo.ListWorkingHours(ctx, providerID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}

	occupied, err := uc.repo.ListOccupiedTimes(ctx, providerID, dateStr)
	if err != nil {
		return nil, err
	}

	av := domain.ComputeAvailability(in, hours, occupied)
	return &av, nil
}
