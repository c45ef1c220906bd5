package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/recordset"
	"github.com/xjtang/lifelog-backend/internal/repos"
	"github.com/xjtang/lifelog-backend/internal/types"
)

type TestDataService interface {
	Generate(ctx context.Context, matterID uuid.UUID, days int) (int, error)
}

type testDataService struct {
	db         *gorm.DB
	log        *logger.Logger
	matterRepo repos.MatterRepo
	recordRepo repos.MatterRecordRepo
	rng        *rand.Rand
}

func NewTestDataService(
	db *gorm.DB,
	baseLog *logger.Logger,
	matterRepo repos.MatterRepo,
	recordRepo repos.MatterRecordRepo,
) TestDataService {
	return &testDataService{
		db:         db,
		log:        baseLog.With("service", "TestDataService"),
		matterRepo: matterRepo,
		recordRepo: recordRepo,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate backfills weighted-random records for the past `days` days
// (default 30). Weekends lean toward better moods and sleep, the way real
// journals tend to. The whole batch is written in one transaction: either
// every generated day lands or none do.
func (s *testDataService) Generate(ctx context.Context, matterID uuid.UUID, days int) (int, error) {
	if days <= 0 {
		days = 30
	}

	matter, err := s.matterRepo.GetByID(ctx, nil, matterID)
	if err != nil {
		return 0, err
	}
	if len(matter.Options) == 0 {
		return 0, validationErr(ReasonNoOptions, "cannot generate records for a matter with no options")
	}

	today := recordset.DayOf(time.Now())
	rows := make([]*types.MatterRecord, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		rows = append(rows, s.randomRecord(matter, day))
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.recordRepo.Create(ctx, tx, rows)
	})
	if err != nil {
		s.log.Warn("Generate: batch insert failed", "error", err, "matter_id", matterID)
		return 0, err
	}
	s.log.Info("Test data generated", "matter_id", matterID, "records", len(rows))
	return len(rows), nil
}

func (s *testDataService) randomRecord(matter *types.Matter, day time.Time) *types.MatterRecord {
	record := &types.MatterRecord{
		ID:       uuid.New(),
		MatterID: matter.ID,
		Day:      day,
		// Spread CreatedAt through the evening so dedup stays meaningful.
		CreatedAt: day.Add(time.Duration(18+s.rng.Intn(5)) * time.Hour),
	}

	weights := optionWeights(matter.Title, len(matter.Options), isWeekend(day))
	switch matter.Kind {
	case types.MatterKindSingle:
		id := matter.Options[weightedPick(s.rng, weights)].ID
		record.SingleOptionID = &id
	case types.MatterKindMulti:
		picks := 1 + s.rng.Intn(minInt(3, len(matter.Options)))
		chosen := make(map[int]bool, picks)
		for len(chosen) < picks {
			chosen[weightedPick(s.rng, weights)] = true
		}
		for idx := range chosen {
			record.SelectedOptionIDs = append(record.SelectedOptionIDs, matter.Options[idx].ID)
		}
	}
	return record
}

// optionWeights biases the built-in templates: weekends skew toward the
// upper options for mood and sleep. Anything else gets a mild center bias.
func optionWeights(title string, n int, weekend bool) []float64 {
	switch {
	case title == "Mood" && n == 7:
		if weekend {
			return []float64{0.05, 0.1, 0.15, 0.2, 0.25, 0.2, 0.05}
		}
		return []float64{0.1, 0.15, 0.2, 0.2, 0.2, 0.1, 0.05}
	case title == "Sleep" && n == 5:
		if weekend {
			return []float64{0.05, 0.1, 0.2, 0.35, 0.3}
		}
		return []float64{0.1, 0.2, 0.3, 0.25, 0.15}
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	if n >= 3 {
		weights[n/2] = 2
	}
	return weights
}

// weightedPick returns an index drawn proportionally to weights. Falls back
// to the last index on accumulated float error.
func weightedPick(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
