package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/db"
	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/observability"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	dbService, err := db.NewService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := dbService.DB()

	clientset, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(theDB, log)

	serviceset, err := wireServices(theDB, log, cfg, reposet, clientset)
	if err != nil {
		log.Sync()
		return nil, err
	}

	if err := serviceset.Seed.EnsureBuiltIns(context.Background()); err != nil {
		log.Sync()
		return nil, fmt.Errorf("seed built-ins: %w", err)
	}

	handlerset := wireHandlers(log, serviceset)
	middlewareset := wireMiddleware(log, serviceset)
	router := wireRouter(cfg, handlerset, middlewareset)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clientset,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting server", "addr", a.Cfg.Addr)
	return a.Router.Run(a.Cfg.Addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = a.otelShutdown(ctx)
		cancel()
		a.otelShutdown = nil
	}
	if a.Clients.SummaryCache != nil {
		_ = a.Clients.SummaryCache.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
