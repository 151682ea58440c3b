package appointment

import (
	"context"

	"github.com/barberlane/booking-engine/internal/models"
)

type Repository interface {
	// -------- Provider / Service (somente leitura) --------
	GetActiveProvider(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Working hours --------
	ListWorkingHours(
		ctx context.Context,
		providerID uint,
		weekday int,
	) ([]models.WorkingHours, error)

	// -------- Client (resolução do balcão) --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	ResolveClientByEmail(
		ctx context.Context,
		name string,
		email string,
		passwordHash string,
	) (*models.Client, error)

	// -------- Appointment (criação / conflito) --------
	ListOccupiedTimes(
		ctx context.Context,
		providerID uint,
		date string,
	) ([]string, error)

	// CreateAppointmentIfFree executa a re-checagem de conflito e o insert
	// como unidade atômica frente a tentativas concorrentes no mesmo
	// (provider, date, time).
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (leitura / status) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentScoped(
		ctx context.Context,
		id uint,
		callerID uint,
		role string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForProviderDay(
		ctx context.Context,
		providerID uint,
		date string,
	) ([]models.Appointment, error)

	ListStatusAudits(
		ctx context.Context,
		appointmentID uint,
	) ([]models.StatusAudit, error)
}
