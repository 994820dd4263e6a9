package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/audit"
	"github.com/careslot/clinic-scheduler/internal/cache"
	"github.com/careslot/clinic-scheduler/internal/config"
	"github.com/careslot/clinic-scheduler/internal/handlers"
	infraRepo "github.com/careslot/clinic-scheduler/internal/infra/repository"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	"github.com/careslot/clinic-scheduler/internal/storage"
	ucAdmin "github.com/careslot/clinic-scheduler/internal/usecase/admin"
	ucAppointment "github.com/careslot/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	logger *zap.Logger,
	cch *cache.Cache,
	uploader *storage.S3Uploader,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	adminRepo := infraRepo.NewAdminGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
	)

	listUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	statsUC := ucAdmin.NewComputeStats(adminRepo)
	listUsersUC := ucAdmin.NewListUsers(adminRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, cch)
	doctorHandler := handlers.NewDoctorHandler(db, cch)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		updateStatusUC,
		listUC,
	)
	profileHandler := handlers.NewProfileHandler(db, cch, uploader)
	adminHandler := handlers.NewAdminHandler(db, statsUC, listUsersUC)

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
		// PUBLIC DOCTOR SEARCH
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/:id", doctorHandler.Get)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.UpdateStatus)

			secured.GET("/profile", profileHandler.Get)
			secured.PUT("/profile", profileHandler.Update)
			secured.POST("/profile/photo", profileHandler.UploadPhoto)

			// ------------------------------
			// ADMIN
			// ------------------------------
			adminGroup := secured.Group("/admin")
			adminGroup.Use(middleware.RequireAdmin())
			{
				adminGroup.GET("/stats", adminHandler.Stats)
				adminGroup.GET("/users", adminHandler.Users)
				adminGroup.GET("/audit-logs", adminHandler.AuditLogs)
			}
		}
	}
}
