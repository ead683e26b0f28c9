package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/cache"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/config"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/handlers"
	infraRepo "github.com/BruksfildServices01/recepcao-visitantes/internal/infra/repository"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/middleware"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/storage"
	ucVisitor "github.com/BruksfildServices01/recepcao-visitantes/internal/usecase/visitor"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	visitorRepo := infraRepo.NewVisitorGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	occupancyCache := cache.NewOccupancyCache(rdb)
	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// USE CASES — VISITANTES
	// ======================================================
	registerVisitorUC := ucVisitor.NewRegisterVisitor(visitorRepo, auditDispatcher)
	checkInVisitorUC := ucVisitor.NewCheckInVisitor(visitorRepo, auditDispatcher)
	checkOutVisitorUC := ucVisitor.NewCheckOutVisitor(visitorRepo, auditDispatcher)
	deleteVisitorUC := ucVisitor.NewDeleteVisitor(visitorRepo, auditDispatcher)
	listVisitorsUC := ucVisitor.NewListVisitors(visitorRepo, auditDispatcher)
	searchVisitorsUC := ucVisitor.NewSearchVisitors(visitorRepo, auditDispatcher)
	visitHistoryUC := ucVisitor.NewVisitHistory(visitorRepo, auditDispatcher)
	roomStatusUC := ucVisitor.NewRoomStatus(visitorRepo, occupancyCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)

	visitorHandler := handlers.NewVisitorHandler(
		db,
		occupancyCache,
		registerVisitorUC,
		checkInVisitorUC,
		checkOutVisitorUC,
		deleteVisitorUC,
		listVisitorsUC,
		searchVisitorsUC,
		visitHistoryUC,
	)

	roomsHandler := handlers.NewRoomsHandler(roomStatusUC)
	systemLogsHandler := handlers.NewSystemLogsHandler(db, auditDispatcher)
	photoHandler := handlers.NewPhotoHandler(db, visitorRepo, photoStore, auditDispatcher)

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
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// VISITANTES
			// ------------------------------
			secured.POST("/visitors", visitorHandler.Create)
			secured.GET("/visitors", visitorHandler.List)
			secured.DELETE("/visitors/:id", visitorHandler.Delete)
			secured.POST("/visitors/:id/checkin", visitorHandler.CheckIn)
			secured.POST("/visitors/:id/checkout", visitorHandler.CheckOut)
			secured.GET("/visitors/search", visitorHandler.Search)
			secured.GET("/visitors/history", visitorHandler.History)
			secured.POST("/visitors/:id/photo", photoHandler.Upload)

			secured.GET("/rooms/status", roomsHandler.Status)

			secured.GET("/system/logs", systemLogsHandler.List)
		}
	}
}
