package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/recordset"
	"github.com/xjtang/lifelog-backend/internal/repos"
	"github.com/xjtang/lifelog-backend/internal/types"
)

type StatsService interface {
	Overview(ctx context.Context, window recordset.Window) (recordset.Overview, error)
	Series(ctx context.Context, matterID uuid.UUID, granularity recordset.Granularity) ([]recordset.Point, error)
	DailySeries(ctx context.Context, matterID uuid.UUID) ([]recordset.Point, error)
	OptionStats(ctx context.Context, matterID uuid.UUID) ([]recordset.OptionStat, error)
}

type statsService struct {
	db         *gorm.DB
	log        *logger.Logger
	matterRepo repos.MatterRepo
	recordRepo repos.MatterRecordRepo
}

func NewStatsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	matterRepo repos.MatterRepo,
	recordRepo repos.MatterRecordRepo,
) StatsService {
	return &statsService{
		db:         db,
		log:        baseLog.With("service", "StatsService"),
		matterRepo: matterRepo,
		recordRepo: recordRepo,
	}
}

// Overview recomputes the statistics cards from a full snapshot. Matters and
// records load concurrently; the aggregation itself is pure.
func (s *statsService) Overview(ctx context.Context, window recordset.Window) (recordset.Overview, error) {
	if !window.Valid() {
		window = recordset.WindowWeek
	}

	var (
		matters []*types.Matter
		records []*types.MatterRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matters, err = s.matterRepo.GetAll(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.recordRepo.GetAll(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("Overview: snapshot load failed", "error", err)
		return recordset.Overview{}, err
	}

	return recordset.BuildOverview(time.Now(), window, matters, records), nil
}

func (s *statsService) Series(ctx context.Context, matterID uuid.UUID, granularity recordset.Granularity) ([]recordset.Point, error) {
	if !granularity.Valid() {
		return nil, validationErr(ReasonInvalidInput, "granularity must be week or month")
	}
	matter, records, err := s.loadMatterRecords(ctx, matterID)
	if err != nil {
		return nil, err
	}
	return recordset.Bucket(recordset.BuildSeries(matter, records), granularity), nil
}

func (s *statsService) DailySeries(ctx context.Context, matterID uuid.UUID) ([]recordset.Point, error) {
	matter, records, err := s.loadMatterRecords(ctx, matterID)
	if err != nil {
		return nil, err
	}
	return recordset.BuildSeries(matter, records), nil
}

func (s *statsService) OptionStats(ctx context.Context, matterID uuid.UUID) ([]recordset.OptionStat, error) {
	matter, records, err := s.loadMatterRecords(ctx, matterID)
	if err != nil {
		return nil, err
	}
	return recordset.OptionStats(matter, records), nil
}

func (s *statsService) loadMatterRecords(ctx context.Context, matterID uuid.UUID) (*types.Matter, []*types.MatterRecord, error) {
	var (
		matter  *types.Matter
		records []*types.MatterRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matter, err = s.matterRepo.GetByID(gctx, nil, matterID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.recordRepo.GetByMatterID(gctx, nil, matterID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("Chart snapshot load failed", "error", err, "matter_id", matterID)
		return nil, nil, err
	}
	return matter, records, nil
}
