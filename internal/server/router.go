package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/xjtang/lifelog-backend/internal/handlers"
	"github.com/xjtang/lifelog-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName     string
	AllowedOrigins  []string
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	MatterHandler   *handlers.MatterHandler
	RecordHandler   *handlers.RecordHandler
	StatsHandler    *handlers.StatsHandler
	WidgetHandler   *handlers.WidgetHandler
	SettingsHandler *handlers.SettingsHandler
	TestDataHandler *handlers.TestDataHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))

	// Cors
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/auth/token", cfg.AuthHandler.IssueToken)

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	// Matters
	api.GET("/matters", cfg.MatterHandler.List)
	api.POST("/matters", cfg.MatterHandler.Create)
	api.GET("/matters/:id", cfg.MatterHandler.Get)
	api.PUT("/matters/:id", cfg.MatterHandler.Update)
	api.PATCH("/matters/:id/enabled", cfg.MatterHandler.SetEnabled)
	api.PUT("/matters/reorder", cfg.MatterHandler.Reorder)
	api.DELETE("/matters/:id", cfg.MatterHandler.Delete)
	// Records
	api.PUT("/matters/:id/record", cfg.RecordHandler.UpsertSelection)
	api.GET("/matters/:id/records", cfg.RecordHandler.History)
	api.GET("/records/today", cfg.RecordHandler.Today)
	api.DELETE("/records/:id", cfg.RecordHandler.Delete)
	// Stats
	api.GET("/stats/overview", cfg.StatsHandler.Overview)
	api.GET("/matters/:id/series", cfg.StatsHandler.Series)
	api.GET("/matters/:id/options/stats", cfg.StatsHandler.OptionStats)
	// Widget
	api.GET("/widget/today", cfg.WidgetHandler.Today)
	// Settings
	api.GET("/settings/reminder", cfg.SettingsHandler.GetReminder)
	api.PUT("/settings/reminder", cfg.SettingsHandler.SetReminder)
	// Test data
	api.POST("/matters/:id/testdata", cfg.TestDataHandler.Generate)

	return router
}
