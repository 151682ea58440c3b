package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/identity"
	"github.com/barberlane/booking-engine/internal/models"
)

func TestGetAppointment_RoleScoping(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAppointment(env.repo)

	ap := &models.Appointment{ClientID: 10, ProviderID: 1, Date: "2026-09-08", Time: "10:00", Status: "pending"}
	require.NoError(t, env.db.Create(ap).Error)

	cases := []struct {
		name   string
		caller identity.Caller
		found  bool
	}{
		{"owning client", identity.Caller{ID: 10, Role: identity.RoleClient}, true},
		{"other client", identity.Caller{ID: 11, Role: identity.RoleClient}, false},
		{"assigned provider", identity.Caller{ID: 1, Role: identity.RoleProvider}, true},
		{"other provider", identity.Caller{ID: 2, Role: identity.RoleProvider}, false},
		{"admin", identity.Caller{ID: 99, Role: identity.RoleAdmin}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), tc.caller, ap.ID)
			if tc.found {
				require.NoError(t, err)
				assert.Equal(t, ap.ID, got.ID)
				return
			}
			// fora do escopo responde como inexistente
			assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound), "err=%v", err)
		})
	}
}
