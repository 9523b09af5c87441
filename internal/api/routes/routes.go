package routes

import (
	"break-planner-backend/internal/api/handlers"
	"break-planner-backend/internal/api/middleware"
	"break-planner-backend/internal/config"
	"break-planner-backend/internal/repository"
	"break-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize store and repositories
	store := repository.NewSchedulingStore(db)
	rosterRepo := repository.NewRosterRepository(db)

	// Initialize services
	notifier := service.NewLogNotifier()
	breaksService := service.NewBreakScheduleService(store, notifier, validator)
	rosterService := service.NewRosterService(rosterRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	breaksHandler := handlers.NewBreaksHandler(breaksService)
	rosterHandler := handlers.NewRosterHandler(rosterService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API routes
	v1 := router.Group("/api/v1")
	{
		breaks := v1.Group("/breaks")
		{
			breaks.GET("/catalog", breaksHandler.GetCatalog)
			breaks.GET("/staff", breaksHandler.EligibleStaff)
			breaks.POST("/assignments", breaksHandler.AddAssignment)
			breaks.DELETE("/assignments/:id", breaksHandler.RemoveAssignment)
			breaks.POST("/slots", breaksHandler.AddCustomSlot)
			breaks.PUT("/slots/:id", breaksHandler.UpdateCustomSlot)
			breaks.DELETE("/slots/:id", breaksHandler.RemoveCustomSlot)
			breaks.PUT("/overrides/:slotId", breaksHandler.SetSlotOverride)
			breaks.POST("/commit", breaksHandler.Commit)
			breaks.POST("/discard", breaksHandler.Discard)
		}

		roster := v1.Group("/roster")
		{
			roster.POST("", rosterHandler.CreateEntry)
			roster.GET("", rosterHandler.ListEntries)
			roster.DELETE("/:id", rosterHandler.DeleteEntry)
		}
	}

	return router
}
