package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Matter   services.MatterService
	Seed     services.SeedService
	Record   services.RecordService
	Stats    services.StatsService
	Widget   services.WidgetService
	Settings services.SettingsService
	TestData services.TestDataService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	authService, err := services.NewAuthService(log, cfg.DeviceKey, cfg.JWTSecretKey, cfg.TokenTTL)
	if err != nil {
		return Services{}, fmt.Errorf("init auth service: %w", err)
	}

	var cache services.SummaryCache
	if clients.SummaryCache != nil {
		cache = clients.SummaryCache
	}
	var invalidator services.SummaryInvalidator
	if cache != nil {
		invalidator = cache
	}

	matterService := services.NewMatterService(db, log, repos.Matter)
	seedService := services.NewSeedService(db, log, repos.Matter)
	recordService := services.NewRecordService(db, log, repos.Matter, repos.MatterRecord, invalidator)
	statsService := services.NewStatsService(db, log, repos.Matter, repos.MatterRecord)
	widgetService := services.NewWidgetService(db, log, repos.Matter, repos.MatterRecord, cache)
	settingsService := services.NewSettingsService(db, log, repos.Setting)
	testDataService := services.NewTestDataService(db, log, repos.Matter, repos.MatterRecord)

	return Services{
		Auth:     authService,
		Matter:   matterService,
		Seed:     seedService,
		Record:   recordService,
		Stats:    statsService,
		Widget:   widgetService,
		Settings: settingsService,
		TestData: testDataService,
	}, nil
}
