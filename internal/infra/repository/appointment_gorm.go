package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/identity"
	"github.com/barberlane/booking-engine/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Provider / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveProvider(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentGormRepository) ListWorkingHours(
	ctx context.Context,
	providerID uint,
	weekday int,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND weekday = ?", providerID, weekday).
		Order("start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// ResolveClientByEmail implementa o caminho do balcão: match exato por
// e-mail ativo reaproveita o registro (nome sobrescrito, last-write-wins);
// sem match, cria registro provisório.
func (r *AppointmentGormRepository) ResolveClientByEmail(
	ctx context.Context,
	name string,
	email string,
	passwordHash string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("email = ? AND active = ?", email, true).
		First(&client).Error

	if err == nil {
		if client.Name != name {
			client.Name = name
			if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
				return nil, err
			}
		}
		return &client, nil
	}

	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	client = models.Client{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Provisional:  true,
		Active:       true,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment (criação / conflito)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOccupiedTimes(
	ctx context.Context,
	providerID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND date = ? AND status IN ?",
			providerID, date, domain.ActiveStatuses,
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// activeSlotIDs monta o re-check de conflito do slot. No Postgres tranca as
// linhas ativas com FOR UPDATE; por isso seleciona ids em vez de count —
// FOR UPDATE não combina com agregados.
func activeSlotIDs(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	q := tx.Model(&models.Appointment{})
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q.Where(
		"provider_id = ? AND date = ? AND time = ? AND status IN ?",
		ap.ProviderID, ap.Date, ap.Time, domain.ActiveStatuses,
	)
}

func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var taken []uint
		if err := activeSlotIDs(tx, ap).Pluck("id", &taken).Error; err != nil {
			return err
		}

		if len(taken) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		if err := tx.Create(ap).Error; err != nil {
			// corrida perdida para uma transação concorrente: o índice
			// parcial único devolve violation, não duplicata
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (leitura / status)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Client").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentScoped(
	ctx context.Context,
	id uint,
	callerID uint,
	role string,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Client")

	switch role {
	case identity.RoleClient:
		q = q.Where("client_id = ?", callerID)
	case identity.RoleProvider:
		q = q.Where("provider_id = ?", callerID)
	case identity.RoleAdmin:
		// sem restrição
	default:
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	var ap models.Appointment
	if err := q.First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForProviderDay(
	ctx context.Context,
	providerID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("provider_id = ? AND date = ?", providerID, date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListStatusAudits(
	ctx context.Context,
	appointmentID uint,
) ([]models.StatusAudit, error) {

	var entries []models.StatusAudit
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
