package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/services"
)

// SummaryCache keeps rendered widget summaries in redis so the widget
// endpoint does not rebuild them on every refresh tick.
type SummaryCache interface {
	services.SummaryCache
	Close() error
}

type summaryCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewSummaryCache(log *logger.Logger) (SummaryCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &summaryCache{
		log: log.With("service", "RedisSummaryCache"),
		rdb: rdb,
		ttl: 15 * time.Minute,
	}, nil
}

func summaryKey(day time.Time) string {
	return "widget:today:" + day.Format("2006-01-02")
}

func (c *summaryCache) GetDay(ctx context.Context, day time.Time) (*services.TodaySummary, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, summaryKey(day)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Summary cache read failed", "error", err)
		}
		return nil, false
	}
	var summary services.TodaySummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		c.log.Warn("Summary cache entry corrupt", "error", err)
		_ = c.rdb.Del(ctx, summaryKey(day)).Err()
		return nil, false
	}
	return &summary, true
}

func (c *summaryCache) SetDay(ctx context.Context, day time.Time, summary *services.TodaySummary) {
	if c == nil || c.rdb == nil || summary == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		c.log.Warn("Summary cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, summaryKey(day), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Summary cache write failed", "error", err)
	}
}

func (c *summaryCache) InvalidateDay(ctx context.Context, day time.Time) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, summaryKey(day)).Err(); err != nil {
		c.log.Warn("Summary cache invalidate failed", "error", err)
	}
}

func (c *summaryCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
