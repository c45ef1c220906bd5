package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/recordset"
	"github.com/xjtang/lifelog-backend/internal/repos"
	"github.com/xjtang/lifelog-backend/internal/types"
)

// MatterSummary mirrors what the home-screen widget shows for one matter:
// how much of today's selection is filled in.
type MatterSummary struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
	CompletedCount int    `json:"completed_count"`
	TotalCount     int    `json:"total_count"`
	IsCompleted    bool   `json:"is_completed"`
}

type TodaySummary struct {
	Day     time.Time       `json:"day"`
	Matters []MatterSummary `json:"matters"`
}

// SummaryCache is the optional read-through cache in front of the widget
// summary. Misses and errors both fall through to a fresh computation.
type SummaryCache interface {
	SummaryInvalidator
	GetDay(ctx context.Context, day time.Time) (*TodaySummary, bool)
	SetDay(ctx context.Context, day time.Time, summary *TodaySummary)
}

type WidgetService interface {
	TodaySummary(ctx context.Context) (*TodaySummary, error)
}

type widgetService struct {
	db         *gorm.DB
	log        *logger.Logger
	matterRepo repos.MatterRepo
	recordRepo repos.MatterRecordRepo
	cache      SummaryCache
}

func NewWidgetService(
	db *gorm.DB,
	baseLog *logger.Logger,
	matterRepo repos.MatterRepo,
	recordRepo repos.MatterRecordRepo,
	cache SummaryCache,
) WidgetService {
	return &widgetService{
		db:         db,
		log:        baseLog.With("service", "WidgetService"),
		matterRepo: matterRepo,
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// TodaySummary derives the widget payload from today's canonical records.
// Completed count is the number of resolvable selected options on today's
// record; a single-select matter is complete once anything is chosen, a
// multi-select once every option is.
func (s *widgetService) TodaySummary(ctx context.Context) (*TodaySummary, error) {
	today := recordset.DayOf(time.Now())

	if s.cache != nil {
		if cached, ok := s.cache.GetDay(ctx, today); ok {
			return cached, nil
		}
	}

	matters, err := s.matterRepo.GetEnabled(ctx, nil)
	if err != nil {
		return nil, err
	}
	rows, err := s.recordRepo.GetByDay(ctx, nil, today)
	if err != nil {
		return nil, err
	}

	canonical := make(map[string]*types.MatterRecord)
	for _, rec := range recordset.Deduplicate(rows) {
		canonical[rec.MatterID.String()] = rec
	}

	summary := &TodaySummary{Day: today, Matters: make([]MatterSummary, 0, len(matters))}
	for _, matter := range matters {
		completed := 0
		if rec, ok := canonical[matter.ID.String()]; ok {
			completed = selectedCount(matter, rec)
		}
		done := false
		switch matter.Kind {
		case types.MatterKindSingle:
			done = completed > 0
		case types.MatterKindMulti:
			done = len(matter.Options) > 0 && completed == len(matter.Options)
		}
		summary.Matters = append(summary.Matters, MatterSummary{
			ID:             matter.ID.String(),
			Title:          matter.Title,
			Icon:           matter.Icon,
			Color:          matter.AccentColorHex,
			CompletedCount: completed,
			TotalCount:     len(matter.Options),
			IsCompleted:    done,
		})
	}

	if s.cache != nil {
		s.cache.SetDay(ctx, today, summary)
	}
	return summary, nil
}

func selectedCount(matter *types.Matter, rec *types.MatterRecord) int {
	switch matter.Kind {
	case types.MatterKindSingle:
		if rec.SingleOptionID != nil {
			if _, ok := matter.Option(*rec.SingleOptionID); ok {
				return 1
			}
		}
		return 0
	case types.MatterKindMulti:
		count := 0
		for _, id := range rec.SelectedOptionIDs {
			if _, ok := matter.Option(id); ok {
				count++
			}
		}
		return count
	}
	return 0
}
