package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberlane/booking-engine/internal/cache"
	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/httpresp"
	"github.com/barberlane/booking-engine/internal/identity"
	"github.com/barberlane/booking-engine/internal/middleware"
	ucAppointment "github.com/barberlane/booking-engine/internal/usecase/appointment"
)

type AppointmentHandler struct {
	getUC    *ucAppointment.GetAppointment
	statusUC *ucAppointment.UpdateStatus
	listUC   *ucAppointment.ListAppointmentsByDate
	repo     domain.Repository
	cache    *cache.AvailabilityCache
}

func NewAppointmentHandler(
	getUC *ucAppointment.GetAppointment,
	statusUC *ucAppointment.UpdateStatus,
	listUC *ucAppointment.ListAppointmentsByDate,
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
) *AppointmentHandler {
	return &AppointmentHandler{
		getUC:    getUC,
		statusUC: statusUC,
		listUC:   listUC,
		repo:     repo,
		cache:    availCache,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /api/appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), caller, uint(id))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// PATCH /api/staff/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidBooking, "Dados inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), caller, uint(id), req.Status)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	// status pode liberar ou ocupar o slot; derruba o cache do dia
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), ap.ProviderID, ap.Date)
	}

	httpresp.OK(c, ap)
}

// GET /api/staff/appointments?date=YYYY-MM-DD
// Admin pode passar provider_id; provider vê a própria agenda.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	providerID := caller.ID
	if raw := c.Query("provider_id"); raw != "" {
		// só admin consulta agenda de outro profissional
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

	out, err := h.listUC.Execute(c.Request.Context(), providerID, dateStr)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

// GET /api/staff/appointments/:id/audit
func (h *AppointmentHandler) ListAudit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	entries, err := h.repo.ListStatusAudits(c.Request.Context(), uint(id))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, entries)
}
