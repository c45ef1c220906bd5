package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/xjtang/lifelog-backend/internal/clients/redis"
	"github.com/xjtang/lifelog-backend/internal/logger"
)

type Clients struct {
	SummaryCache redis.SummaryCache
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis is optional; without it the widget endpoint recomputes on
	// every request.
	var cache redis.SummaryCache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		c, err := redis.NewSummaryCache(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis summary cache: %w", err)
		}
		cache = c
	}

	return Clients{SummaryCache: cache}, nil
}
