package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barberlane/booking-engine/internal/audit"
	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/identity"
	"github.com/barberlane/booking-engine/internal/models"
)

// UpdateStatus sobrescreve o status sem validar predecessor: a recepção
// precisa poder corrigir erros. A trilha de auditoria registra cada troca.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor identity.Caller,
	appointmentID uint,
	target string,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(target)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	old := ap.Status
	ap.Status = string(status)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		AppointmentID: &ap.ID,
		ActorID:       &actorID,
		Action:        audit.ActionStatusChanged,
		OldStatus:     old,
		NewStatus:     ap.Status,
	})

	return ap, nil
}
