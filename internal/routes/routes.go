package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/birdchime/appointment-api/internal/audit"
	"github.com/birdchime/appointment-api/internal/cache"
	"github.com/birdchime/appointment-api/internal/config"
	"github.com/birdchime/appointment-api/internal/handlers"
	infraRepo "github.com/birdchime/appointment-api/internal/infra/repository"
	"github.com/birdchime/appointment-api/internal/timezone"
	ucAppointment "github.com/birdchime/appointment-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.NewAvailabilityCache(cfg.RedisURL)

	validate := validator.New()
	businessLoc := timezone.Location(cfg.BusinessTimezone)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
		validate,
		businessLoc,
		cfg.EmailDomainCheck,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
		businessLoc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		getAvailabilityUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.GET("/available", appointmentHandler.AvailableSlots)
			appointments.POST("", appointmentHandler.Create)
			appointments.DELETE("/:id", appointmentHandler.Delete)
		}
	}
}
