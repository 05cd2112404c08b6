package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iswantosan/appointment/internal/audit"
	"github.com/iswantosan/appointment/internal/config"
	"github.com/iswantosan/appointment/internal/handlers"
	infraRepo "github.com/iswantosan/appointment/internal/infra/repository"
	"github.com/iswantosan/appointment/internal/middleware"
	ucAppointment "github.com/iswantosan/appointment/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	getUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	conflictUC := ucAppointment.NewCheckConflict(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		getUC,
		listUC,
		deleteUC,
		conflictUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointment", appointmentHandler.List)
			secured.POST("/appointment", appointmentHandler.Create)
			secured.GET("/appointment/conflict", appointmentHandler.CheckConflict)
			secured.GET("/appointment/:id", appointmentHandler.Get)
			secured.PUT("/appointment/:id", appointmentHandler.Update)
			secured.DELETE("/appointment/:id", appointmentHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
