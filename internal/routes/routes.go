package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-rewards/internal/audit"
	"github.com/BruksfildServices01/barber-rewards/internal/cache"
	"github.com/BruksfildServices01/barber-rewards/internal/config"
	"github.com/BruksfildServices01/barber-rewards/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-rewards/internal/infra/repository"
	"github.com/BruksfildServices01/barber-rewards/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-rewards/internal/usecase/appointment"
	ucRewards "github.com/BruksfildServices01/barber-rewards/internal/usecase/rewards"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, c cache.Cache, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := infraRepo.NewGormStore(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreate(store, auditDispatcher)
	completeAppointmentUC := ucAppointment.NewComplete(store, auditDispatcher)
	listByBarberUC := ucAppointment.NewListByBarber(store)
	listByUserUC := ucAppointment.NewListByUser(store)

	// ======================================================
	// USE CASES — REWARDS
	// ======================================================
	balanceUC := ucRewards.NewBalance(store)
	redeemableUC := ucRewards.NewRedeemable(store)
	redeemUC := ucRewards.NewRedeem(store, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	userHandler := handlers.NewUserHandler(store)
	serviceHandler := handlers.NewServiceHandler(db, store, c, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		completeAppointmentUC,
		listByBarberUC,
		listByUserUC,
	)

	rewardsHandler := handlers.NewRewardsHandler(
		balanceUC,
		redeemableUC,
		redeemUC,
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
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/role", userHandler.CheckRole)
			secured.GET("/barbers", userHandler.ListBarbers)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.GET("/appointments/barber/:id", appointmentHandler.ListByBarber)
			secured.GET("/appointments/user/:id", appointmentHandler.ListByUser)

			// ------------------------------
			// POINTS
			// ------------------------------
			secured.GET("/points", rewardsHandler.GetPoints)
			secured.GET("/points/redeemable", rewardsHandler.ListRedeemable)
			secured.POST("/points/redeem/:serviceId", rewardsHandler.Redeem)
		}
	}
}
