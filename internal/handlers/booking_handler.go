package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberlane/booking-engine/internal/cache"
	"github.com/barberlane/booking-engine/internal/httperr"
	"github.com/barberlane/booking-engine/internal/httpresp"
	"github.com/barberlane/booking-engine/internal/middleware"
	ucAppointment "github.com/barberlane/booking-engine/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	uc    *ucAppointment.CreateBooking
	cache *cache.AvailabilityCache
}

func NewBookingHandler(
	uc *ucAppointment.CreateBooking,
	availCache *cache.AvailabilityCache,
) *BookingHandler {
	return &BookingHandler{
		uc:    uc,
		cache: availCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Campos sem binding obrigatório de propósito: a ausência é apontada pelo
// validador de domínio com o reason code do campo, não pelo bind genérico.
type SelfBookingRequest struct {
	ProviderID  uint   `json:"provider_id"`
	ServiceID   uint   `json:"service_id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:mm
	Phone       string `json:"phone"`
	Payment     string `json:"payment_method"`
	TransferRef string `json:"transfer_reference"`
}

type StaffBookingRequest struct {
	SelfBookingRequest

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}

// ======================================================
// SELF-SERVICE — POST /api/bookings
// ======================================================

func (h *BookingHandler) CreateSelf(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var req SelfBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidBooking, "Dados inválidos.")
		return
	}

	result, err := h.uc.ExecuteSelf(c.Request.Context(), caller, ucAppointment.SelfBookingInput{
		ProviderID:  req.ProviderID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Phone:       req.Phone,
		Payment:     req.Payment,
		TransferRef: req.TransferRef,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.invalidate(c, req.ProviderID, req.Date)
	httpresp.Created(c, result)
}

// ======================================================
// STAFF-ASSISTED — POST /api/staff/bookings
// ======================================================

func (h *BookingHandler) CreateStaff(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var req StaffBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidBooking, "Dados inválidos.")
		return
	}

	result, err := h.uc.ExecuteStaff(c.Request.Context(), caller, ucAppointment.StaffBookingInput{
		SelfBookingInput: ucAppointment.SelfBookingInput{
			ProviderID:  req.ProviderID,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			Phone:       req.Phone,
			Payment:     req.Payment,
			TransferRef: req.TransferRef,
		},
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.invalidate(c, req.ProviderID, req.Date)

	c.JSON(201, gin.H{
		"appointment_id":   result.AppointmentID,
		"reservation_code": result.ReservationCode,
		"provider_name":    result.ProviderName,
		"service_name":     result.ServiceName,
		"price":            result.Price,
		"booked_by_id":     caller.ID,
		"booked_by_name":   result.BookedByName,
		"booked_by_role":   result.BookedByRole,
	})
}

func (h *BookingHandler) invalidate(c *gin.Context, providerID uint, date string) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), providerID, date)
	}
}
