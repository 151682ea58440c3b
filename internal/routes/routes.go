package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberlane/booking-engine/internal/audit"
	"github.com/barberlane/booking-engine/internal/cache"
	"github.com/barberlane/booking-engine/internal/config"
	"github.com/barberlane/booking-engine/internal/handlers"
	infraRepo "github.com/barberlane/booking-engine/internal/infra/repository"
	"github.com/barberlane/booking-engine/internal/middleware"
	ucAppointment "github.com/barberlane/booking-engine/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availCache := cache.NewAvailabilityCache(cfg.RedisAddr)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(repo, cfg.Timezone, cfg.AdvisoryDay)
	createBookingUC := ucAppointment.NewCreateBooking(repo, auditDispatcher, cfg.Timezone)
	updateStatusUC := ucAppointment.NewUpdateStatus(repo, auditDispatcher)
	getAppointmentUC := ucAppointment.NewGetAppointment(repo)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(repo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC, availCache)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, availCache)
	appointmentHandler := handlers.NewAppointmentHandler(
		getAppointmentUC,
		updateStatusUC,
		listByDateUC,
		repo,
		availCache,
	)
	workingHoursHandler := handlers.NewWorkingHoursHandler(repo)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/providers/:id/slots", availabilityHandler.ListSlots)
		api.POST("/bookings", bookingHandler.CreateSelf)
		api.GET("/appointments/:id", appointmentHandler.Get)

		// ------------------------------
		// STAFF (PROVIDER | ADMIN)
		// ------------------------------
		staff := api.Group("/staff")
		staff.Use(middleware.RequireStaff())
		{
			staff.POST("/bookings", bookingHandler.CreateStaff)
			staff.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			staff.GET("/appointments", appointmentHandler.ListByDate)
			staff.GET("/appointments/:id/audit", appointmentHandler.ListAudit)
			staff.GET("/working-hours", workingHoursHandler.Get)
		}
	}
}
