package app

import (
	"github.com/xjtang/lifelog-backend/internal/handlers"
	"github.com/xjtang/lifelog-backend/internal/logger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Matter   *handlers.MatterHandler
	Record   *handlers.RecordHandler
	Stats    *handlers.StatsHandler
	Widget   *handlers.WidgetHandler
	Settings *handlers.SettingsHandler
	TestData *handlers.TestDataHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     handlers.NewAuthHandler(services.Auth),
		Matter:   handlers.NewMatterHandler(services.Matter),
		Record:   handlers.NewRecordHandler(services.Record),
		Stats:    handlers.NewStatsHandler(services.Stats),
		Widget:   handlers.NewWidgetHandler(services.Widget),
		Settings: handlers.NewSettingsHandler(services.Settings),
		TestData: handlers.NewTestDataHandler(services.TestData),
	}
}
