package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barberlane/booking-engine/internal/audit"
	dbpkg "github.com/barberlane/booking-engine/internal/db"
	infraRepo "github.com/barberlane/booking-engine/internal/infra/repository"
	"github.com/barberlane/booking-engine/internal/models"
)

const testTZ = "UTC"

// "agora" fixo nos testes: segunda-feira 2026-09-07 08:00 UTC
func fixedNow() time.Time {
	return time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)
}

type testEnv struct {
	db    *gorm.DB
	repo  *infraRepo.AppointmentGormRepository
	audit *audit.Dispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	seed(t, db)

	return &testEnv{
		db:    db,
		repo:  infraRepo.NewAppointmentGormRepository(db),
		audit: audit.NewDispatcher(audit.New(db)),
	}
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&models.Provider{
		ID: 1, Name: "Carlos Barbeiro", Specialty: "corte clássico", YearsExperience: 8, Active: true,
	}).Error)
	require.NoError(t, db.Create(&models.Provider{
		ID: 2, Name: "Inativo", Active: false,
	}).Error)

	require.NoError(t, db.Create(&models.Service{
		ID: 1, Name: "Corte Masculino", Price: 50, Active: true,
	}).Error)

	require.NoError(t, db.Create(&models.Client{
		ID: 10, Name: "Pedro Cliente", Email: "pedro@example.com", PasswordHash: "x", Active: true,
	}).Error)

	// terça-feira (weekday 2), 09:00-12:00
	require.NoError(t, db.Create(&models.WorkingHours{
		ProviderID: 1, Weekday: 2, StartTime: "09:00", EndTime: "12:00", Available: true,
	}).Error)
}

func (e *testEnv) auditCount(t *testing.T, action string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.StatusAudit{}).
		Where("action = ?", action).
		Count(&count).Error)
	return count
}
