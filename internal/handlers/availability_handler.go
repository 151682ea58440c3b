package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberlane/booking-engine/internal/cache"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/httpresp"
	ucAppointment "github.com/barberlane/booking-engine/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	uc    *ucAppointment.GetAvailability
	cache *cache.AvailabilityCache
}

func NewAvailabilityHandler(
	uc *ucAppointment.GetAvailability,
	availCache *cache.AvailabilityCache,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		uc:    uc,
		cache: availCache,
	}
}

// GET /api/providers/:id/slots?date=YYYY-MM-DD
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Profissional inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	ctx := c.Request.Context()

	if h.cache != nil {
		if av, ok := h.cache.Get(ctx, uint(providerID), dateStr); ok {
			httpresp.OK(c, av)
			return
		}
	}

	av, err := h.uc.Execute(ctx, uint(providerID), dateStr)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(ctx, uint(providerID), dateStr, av)
	}

	httpresp.OK(c, av)
}
