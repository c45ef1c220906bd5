package app

import (
	"github.com/gin-gonic/gin"

	"github.com/xjtang/lifelog-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:     cfg.ServiceName,
		AllowedOrigins:  cfg.AllowedOrigins,
		AuthHandler:     handlers.Auth,
		AuthMiddleware:  middleware.Auth,
		MatterHandler:   handlers.Matter,
		RecordHandler:   handlers.Record,
		StatsHandler:    handlers.Stats,
		WidgetHandler:   handlers.Widget,
		SettingsHandler: handlers.Settings,
		TestDataHandler: handlers.TestData,
	})
}
