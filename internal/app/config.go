package app

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/utils"
)

type Config struct {
	ServiceName    string
	Environment    string
	Version        string
	Addr           string
	DeviceKey      string
	JWTSecretKey   string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

// fileConfig is the optional yaml overlay. Anything unset here falls back to
// the environment values.
type fileConfig struct {
	ServiceName    string   `yaml:"service_name"`
	Environment    string   `yaml:"environment"`
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	deviceKey := utils.GetEnv("DEVICE_KEY", "", log)
	tokenTTLSeconds := utils.GetEnvAsInt("TOKEN_TTL", 86400, log)

	cfg := Config{
		ServiceName:  utils.GetEnv("SERVICE_NAME", "lifelog", log),
		Environment:  utils.GetEnv("APP_ENV", "development", log),
		Version:      utils.GetEnv("APP_VERSION", "dev", log),
		Addr:         utils.GetEnv("ADDR", ":8080", log),
		DeviceKey:    deviceKey,
		JWTSecretKey: jwtSecretKey,
		TokenTTL:     time.Duration(tokenTTLSeconds) * time.Second,
	}
	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	path := utils.GetEnv("CONFIG_PATH", "config.yaml", log)
	overlayFromFile(&cfg, path, log)
	return cfg
}

func overlayFromFile(cfg *Config, path string, log *logger.Logger) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("Config file unreadable, skipping", "path", path, "error", err)
		}
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		log.Warn("Config file malformed, skipping", "path", path, "error", err)
		return
	}
	if fc.ServiceName != "" {
		cfg.ServiceName = fc.ServiceName
	}
	if fc.Environment != "" {
		cfg.Environment = fc.Environment
	}
	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
	log.Info("Config overlay applied", "path", path)
}
