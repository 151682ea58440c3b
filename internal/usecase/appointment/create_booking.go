package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberlane/booking-engine/internal/audit"
	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/identity"
	"github.com/barberlane/booking-engine/internal/models"
	"github.com/barberlane/booking-engine/internal/timezone"
	"github.com/barberlane/booking-engine/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SelfBookingInput struct {
	ProviderID  uint
	ServiceID   uint
	Date        string
	Time        string
	Phone       string
	Payment     string
	TransferRef string
}

type StaffBookingInput struct {
	SelfBookingInput

	ClientName  string
	ClientEmail string
}

type BookingResult struct {
	AppointmentID   uint    `json:"appointment_id"`
	ReservationCode string  `json:"reservation_code"`
	ProviderName    string  `json:"provider_name"`
	ServiceName     string  `json:"service_name"`
	Price           float64 `json:"price"`

	// preenchidos só no caminho de balcão
	BookedByName string `json:"booked_by_name,omitempty"`
	BookedByRole string `json:"booked_by_role,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking é o núcleo único dos dois pontos de entrada. Autoatendimento
// e balcão divergem só na resolução do cliente e no status inicial; a
// validação e a re-checagem de conflito são as mesmas.
type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: auditDisp,
		tz:    tz,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

// WithClock troca a referência de "agora" nos testes.
func (uc *CreateBooking) WithClock(now func() time.Time) *CreateBooking {
	uc.now = now
	return uc
}

// ======================================================
// SELF-SERVICE
// ======================================================

func (uc *CreateBooking) ExecuteSelf(
	ctx context.Context,
	caller identity.Caller,
	in SelfBookingInput,
) (*BookingResult, error) {

	if err := validators.ValidateBooking(validators.BookingInput{
		ProviderID:  in.ProviderID,
		ServiceID:   in.ServiceID,
		Date:        in.Date,
		Time:        in.Time,
		Phone:       in.Phone,
		Payment:     in.Payment,
		TransferRef: in.TransferRef,
	}, uc.tz, uc.now()); err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClientByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeUnauthenticated)
		}
		return nil, err
	}

	// contato padrão: e-mail da conta do próprio cliente
	return uc.create(ctx, client.ID, client.Email, in, false, nil)
}

// ======================================================
// STAFF-ASSISTED
// ======================================================

func (uc *CreateBooking) ExecuteStaff(
	ctx context.Context,
	caller identity.Caller,
	in StaffBookingInput,
) (*BookingResult, error) {

	if !caller.Staff() {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if err := validators.ValidateBooking(validators.BookingInput{
		ProviderID:    in.ProviderID,
		ServiceID:     in.ServiceID,
		Date:          in.Date,
		Time:          in.Time,
		Phone:         in.Phone,
		Payment:       in.Payment,
		TransferRef:   in.TransferRef,
		StaffAssisted: true,
		ClientName:    in.ClientName,
		ClientEmail:   in.ClientEmail,
	}, uc.tz, uc.now()); err != nil {
		return nil, err
	}

	client, err := uc.repo.ResolveClientByEmail(
		ctx,
		in.ClientName,
		in.ClientEmail,
		provisionalPasswordHash(),
	)
	if err != nil {
		return nil, err
	}

	actorID := caller.ID
	result, err := uc.create(ctx, client.ID, in.ClientEmail, in.SelfBookingInput, true, &actorID)
	if err != nil {
		return nil, err
	}

	result.BookedByRole = caller.Role
	if caller.Role == identity.RoleProvider {
		// admins não têm registro no diretório de profissionais; para eles
		// fica só o papel
		if staff, err := uc.repo.GetActiveProvider(ctx, caller.ID); err == nil {
			result.BookedByName = staff.Name
		}
	}

	return result, nil
}

// ======================================================
// NÚCLEO COMPARTILHADO
// ======================================================

func (uc *CreateBooking) create(
	ctx context.Context,
	clientID uint,
	email string,
	in SelfBookingInput,
	staffAssisted bool,
	bookedBy *uint,
) (*BookingResult, error) {

	provider, err := uc.repo.GetActiveProvider(ctx, in.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeProviderUnavailable)
		}
		return nil, err
	}

	// snapshot do catálogo: nome e preço congelados no agendamento
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:          clientID,
		ProviderID:        provider.ID,
		Date:              in.Date,
		Time:              in.Time,
		Status:            string(domain.InitialStatus(staffAssisted)),
		ReservationCode:   domain.NewReservationCode(),
		ServiceName:       svc.Name,
		Price:             svc.Price,
		Phone:             in.Phone,
		Email:             email,
		PaymentMethod:     in.Payment,
		TransferReference: in.TransferRef,
		BookedByID:        bookedBy,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			uc.audit.Dispatch(audit.Event{
				ActorID: bookedBy,
				Action:  audit.ActionBookingConflict,
				Metadata: map[string]any{
					"provider_id": in.ProviderID,
					"date":        in.Date,
					"time":        in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AppointmentID: &ap.ID,
		ActorID:       bookedBy,
		Action:        audit.ActionBookingCreated,
		NewStatus:     ap.Status,
	})

	return &BookingResult{
		AppointmentID:   ap.ID,
		ReservationCode: ap.ReservationCode,
		ProviderName:    provider.Name,
		ServiceName:     svc.Name,
		Price:           svc.Price,
	}, nil
}

// Senha provisória inutilizável: hash de um segredo aleatório que ninguém
// conhece. O cliente define a senha real ao ativar a conta, fora deste núcleo.
func provisionalPasswordHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(hash)
}
