package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/types"
	"github.com/xjtang/lifelog-backend/internal/utils"
)

// Service owns the gorm handle. The default backend is an embedded SQLite
// file, matching the single-user deployment; DB_DRIVER=postgres switches to
// a server-backed store with the same schema.
type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewService(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "sqlite", log))

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "lifelog.db", log)
		// Serialized writes: there is exactly one writer context, and
		// readers must see a record swap whole or not at all.
		dialector = sqlite.Open(path + "?_busy_timeout=5000&_journal_mode=WAL")
	case "postgres":
		host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "lifelog", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	serviceLog.Info("Connecting to database...", "driver", driver)
	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	return &Service{db: db, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.Matter{},
		&types.MatterRecord{},
		&types.Setting{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
