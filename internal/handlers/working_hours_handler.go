package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/httpresp"
	"github.com/barberlane/booking-engine/internal/identity"
	"github.com/barberlane/booking-engine/internal/middleware"
)

// Leitura do template semanal. A administração do template acontece fora
// deste núcleo.
type WorkingHoursHandler struct {
	repo domain.Repository
}

func NewWorkingHoursHandler(repo domain.Repository) *WorkingHoursHandler {
	return &WorkingHoursHandler{repo: repo}
}

// GET /api/staff/working-hours?weekday=0..6[&provider_id=]
func (h *WorkingHoursHandler) Get(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	weekday, err := strconv.Atoi(c.Query("weekday"))
	if err != nil || weekday < 0 || weekday > 6 {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido (0=domingo..6=sábado).")
		return
	}

	providerID := caller.ID
	if raw := c.Query("provider_id"); raw != "" {
		if caller.Role != identity.RoleAdmin {
			httperr.Forbidden(c, httperr.CodeUnauthorized, "Acesso negado.")
			return
		}
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_provider_id", "Profissional inválido.")
			return
		}
		providerID = uint(parsed)
	}

	hours, err := h.repo.ListWorkingHours(c.Request.Context(), providerID, weekday)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, hours)
}
