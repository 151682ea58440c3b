package appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlane/booking-engine/internal/audit"
	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/identity"
	"github.com/barberlane/booking-engine/internal/models"
)

var (
	clientCaller = identity.Caller{ID: 10, Role: identity.RoleClient}
	staffCaller  = identity.Caller{ID: 1, Role: identity.RoleProvider}
)

func selfInput() SelfBookingInput {
	return SelfBookingInput{
		ProviderID: 1,
		ServiceID:  1,
		Date:       "2026-09-08", // terça, dentro do expediente semeado
		Time:       "10:00",
		Phone:      "11999990000",
		Payment:    "on-site",
	}
}

func newCreateUC(env *testEnv) *CreateBooking {
	return NewCreateBooking(env.repo, env.audit, testTZ).WithClock(fixedNow)
}

func TestCreateSelfBooking_Success(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	result, err := uc.ExecuteSelf(context.Background(), clientCaller, selfInput())
	require.NoError(t, err)

	assert.NotZero(t, result.AppointmentID)
	assert.True(t, strings.HasPrefix(result.ReservationCode, "BRB-"))
	assert.Equal(t, "Carlos Barbeiro", result.ProviderName)
	assert.Equal(t, "Corte Masculino", result.ServiceName)
	assert.Equal(t, 50.0, result.Price)

	var ap models.Appointment
	require.NoError(t, env.db.First(&ap, result.AppointmentID).Error)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.EqualValues(t, 10, ap.ClientID)
	// contato padrão vem da conta do cliente
	assert.Equal(t, "pedro@example.com", ap.Email)
	assert.Nil(t, ap.BookedByID)

	require.Eventually(t, func() bool {
		return env.auditCount(t, audit.ActionBookingCreated) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCreateSelfBooking_SlotAlreadyTaken(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	_, err := uc.ExecuteSelf(context.Background(), clientCaller, selfInput())
	require.NoError(t, err)

	_, err = uc.ExecuteSelf(context.Background(), clientCaller, selfInput())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken), "err=%v", err)

	require.Eventually(t, func() bool {
		return env.auditCount(t, audit.ActionBookingConflict) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCreateSelfBooking_PastDate(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	in := selfInput()
	in.Date = "2026-09-06" // ontem

	_, err := uc.ExecuteSelf(context.Background(), clientCaller, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePastDate), "err=%v", err)
}

func TestCreateSelfBooking_ProviderUnavailable(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	for _, providerID := range []uint{2, 999} { // inativo e inexistente
		in := selfInput()
		in.ProviderID = providerID

		_, err := uc.ExecuteSelf(context.Background(), clientCaller, in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeProviderUnavailable), "provider=%d err=%v", providerID, err)
	}
}

func TestCreateSelfBooking_ServiceNotFound(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	in := selfInput()
	in.ServiceID = 999

	_, err := uc.ExecuteSelf(context.Background(), clientCaller, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound), "err=%v", err)
}

func TestCreateSelfBooking_TransferRequiresReference(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	in := selfInput()
	in.Payment = "transfer"

	_, err := uc.ExecuteSelf(context.Background(), clientCaller, in)
	require.True(t, httperr.IsBusiness(err, httperr.CodeInvalidBooking))
	assert.Equal(t, "missing_transfer_reference", httperr.BusinessReason(err))

	in.TransferRef = "TED-0042"
	_, err = uc.ExecuteSelf(context.Background(), clientCaller, in)
	assert.NoError(t, err)
}

func TestCreateSelfBooking_UnknownCaller(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	_, err := uc.ExecuteSelf(context.Background(), identity.Caller{ID: 777, Role: identity.RoleClient}, selfInput())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated), "err=%v", err)
}

// ------------------------------------------------------
// STAFF-ASSISTED
// ------------------------------------------------------

func staffInput(timeOfDay string) StaffBookingInput {
	in := selfInput()
	in.Time = timeOfDay
	return StaffBookingInput{
		SelfBookingInput: in,
		ClientName:       "Maria Souza",
		ClientEmail:      "maria@example.com",
	}
}

func TestCreateStaffBooking_RequiresStaffRole(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	_, err := uc.ExecuteStaff(context.Background(), clientCaller, staffInput("09:00"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorized), "err=%v", err)
}

func TestCreateStaffBooking_ProvisionsClientAndConfirms(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	result, err := uc.ExecuteStaff(context.Background(), staffCaller, staffInput("09:00"))
	require.NoError(t, err)

	// o resultado identifica quem registrou pelo nome do diretório
	assert.Equal(t, "Carlos Barbeiro", result.BookedByName)
	assert.Equal(t, identity.RoleProvider, result.BookedByRole)

	var ap models.Appointment
	require.NoError(t, env.db.First(&ap, result.AppointmentID).Error)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	require.NotNil(t, ap.BookedByID)
	assert.EqualValues(t, staffCaller.ID, *ap.BookedByID)

	var client models.Client
	require.NoError(t, env.db.Where("email = ?", "maria@example.com").First(&client).Error)
	assert.True(t, client.Provisional)
	assert.True(t, client.Active)
	assert.NotEmpty(t, client.PasswordHash)
	assert.Equal(t, client.ID, ap.ClientID)
}

func TestCreateStaffBooking_AdminFallsBackToRole(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	admin := identity.Caller{ID: 500, Role: identity.RoleAdmin}
	result, err := uc.ExecuteStaff(context.Background(), admin, staffInput("09:00"))
	require.NoError(t, err)

	// admin não aparece no diretório de profissionais
	assert.Empty(t, result.BookedByName)
	assert.Equal(t, identity.RoleAdmin, result.BookedByRole)
}

func TestCreateStaffBooking_ClientResolutionIdempotent(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	first, err := uc.ExecuteStaff(context.Background(), staffCaller, staffInput("09:00"))
	require.NoError(t, err)

	second := staffInput("11:00")
	second.ClientName = "Maria S. Oliveira"
	res2, err := uc.ExecuteStaff(context.Background(), staffCaller, second)
	require.NoError(t, err)

	var ap1, ap2 models.Appointment
	require.NoError(t, env.db.First(&ap1, first.AppointmentID).Error)
	require.NoError(t, env.db.First(&ap2, res2.AppointmentID).Error)
	assert.Equal(t, ap1.ClientID, ap2.ClientID)

	var client models.Client
	require.NoError(t, env.db.First(&client, ap2.ClientID).Error)
	assert.Equal(t, "Maria S. Oliveira", client.Name)

	var clients int64
	require.NoError(t, env.db.Model(&models.Client{}).
		Where("email = ?", "maria@example.com").Count(&clients).Error)
	assert.EqualValues(t, 1, clients)
}

func TestCreateStaffBooking_SharesConflictInvariantWithSelfService(t *testing.T) {
	env := newTestEnv(t)
	uc := newCreateUC(env)

	_, err := uc.ExecuteSelf(context.Background(), clientCaller, selfInput())
	require.NoError(t, err)

	_, err = uc.ExecuteStaff(context.Background(), staffCaller, staffInput("10:00"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken), "err=%v", err)
}
