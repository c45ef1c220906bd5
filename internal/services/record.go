package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/recordset"
	"github.com/xjtang/lifelog-backend/internal/repos"
	"github.com/xjtang/lifelog-backend/internal/types"
)

// SummaryInvalidator drops any cached widget summary for a day after a
// record write. A nil implementation is fine; the summary is then computed
// fresh on every read.
type SummaryInvalidator interface {
	InvalidateDay(ctx context.Context, day time.Time)
}

// RecordSelection is one submitted choice set. Day is optional: absent means
// today, present means an explicit historical edit.
type RecordSelection struct {
	SingleOptionID    *uuid.UUID  `json:"single_option_id"`
	SelectedOptionIDs []uuid.UUID `json:"selected_option_ids"`
	Day               *time.Time  `json:"day"`
}

type RecordService interface {
	UpsertSelection(ctx context.Context, matterID uuid.UUID, sel RecordSelection) (*types.MatterRecord, error)
	CanonicalForDay(ctx context.Context, tx *gorm.DB, matterID uuid.UUID, day time.Time) (*types.MatterRecord, error)
	TodayRecords(ctx context.Context, tx *gorm.DB) ([]*types.MatterRecord, error)
	History(ctx context.Context, tx *gorm.DB, matterID uuid.UUID, window recordset.Window) ([]*types.MatterRecord, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type recordService struct {
	db          *gorm.DB
	log         *logger.Logger
	matterRepo  repos.MatterRepo
	recordRepo  repos.MatterRecordRepo
	invalidator SummaryInvalidator
}

func NewRecordService(
	db *gorm.DB,
	baseLog *logger.Logger,
	matterRepo repos.MatterRepo,
	recordRepo repos.MatterRecordRepo,
	invalidator SummaryInvalidator,
) RecordService {
	return &recordService{
		db:          db,
		log:         baseLog.With("service", "RecordService"),
		matterRepo:  matterRepo,
		recordRepo:  recordRepo,
		invalidator: invalidator,
	}
}

// UpsertSelection creates or replaces the canonical record for
// (matter, day). The read-modify-write runs in one transaction so a
// concurrent reader sees the old record or the new one, never a blend.
func (s *recordService) UpsertSelection(ctx context.Context, matterID uuid.UUID, sel RecordSelection) (*types.MatterRecord, error) {
	day := recordset.DayOf(time.Now())
	if sel.Day != nil {
		day = recordset.DayOf(*sel.Day)
	}

	var result *types.MatterRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		matter, err := s.matterRepo.GetByID(ctx, tx, matterID)
		if err != nil {
			return err
		}
		if verr := validateSelection(matter, sel); verr != nil {
			return verr
		}

		record, err := s.CanonicalForDay(ctx, tx, matterID, day)
		if err != nil {
			return err
		}
		if record == nil {
			record = &types.MatterRecord{
				ID:       uuid.New(),
				MatterID: matterID,
				Day:      day,
			}
			applySelection(record, matter.Kind, sel)
			if err := s.recordRepo.Create(ctx, tx, []*types.MatterRecord{record}); err != nil {
				return err
			}
		} else {
			applySelection(record, matter.Kind, sel)
			if err := s.recordRepo.Update(ctx, tx, record); err != nil {
				return err
			}
		}
		result = record
		return nil
	})
	if err != nil {
		s.log.Warn("UpsertSelection failed", "error", err, "matter_id", matterID, "day", day)
		return nil, err
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateDay(ctx, day)
	}
	return result, nil
}

// validateSelection rejects a selection shaped for the wrong kind, or one
// naming options the matter does not currently have. Only the write path is
// strict: old records with since-removed options stay readable and simply
// resolve to "no selection".
func validateSelection(matter *types.Matter, sel RecordSelection) *ValidationError {
	switch matter.Kind {
	case types.MatterKindSingle:
		if len(sel.SelectedOptionIDs) > 0 {
			return validationErr(ReasonInvalidInput, "single-select matter takes single_option_id, not a list")
		}
		if sel.SingleOptionID != nil {
			if _, ok := matter.Option(*sel.SingleOptionID); !ok {
				return validationErr(ReasonInvalidOption, "selected option does not exist on this matter")
			}
		}
	case types.MatterKindMulti:
		if sel.SingleOptionID != nil {
			return validationErr(ReasonInvalidInput, "multi-select matter takes selected_option_ids, not a single id")
		}
		for _, id := range sel.SelectedOptionIDs {
			if _, ok := matter.Option(id); !ok {
				return validationErr(ReasonInvalidOption, "selected option does not exist on this matter")
			}
		}
	}
	return nil
}

func applySelection(record *types.MatterRecord, kind types.MatterKind, sel RecordSelection) {
	switch kind {
	case types.MatterKindSingle:
		record.SingleOptionID = sel.SingleOptionID
		record.SelectedOptionIDs = nil
	case types.MatterKindMulti:
		record.SingleOptionID = nil
		record.SelectedOptionIDs = dedupeIDs(sel.SelectedOptionIDs)
	}
}

// dedupeIDs drops repeated ids while keeping first-seen order; duplicates in
// a multi selection carry no meaning.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// CanonicalForDay returns the record the deduplicator would pick for
// (matter, day), or nil when the day has none.
func (s *recordService) CanonicalForDay(ctx context.Context, tx *gorm.DB, matterID uuid.UUID, day time.Time) (*types.MatterRecord, error) {
	rows, err := s.recordRepo.GetByMatterAndDay(ctx, tx, matterID, recordset.DayOf(day))
	if err != nil {
		return nil, err
	}
	deduped := recordset.Deduplicate(rows)
	if len(deduped) == 0 {
		return nil, nil
	}
	return deduped[0], nil
}

// TodayRecords returns today's canonical record per enabled matter.
func (s *recordService) TodayRecords(ctx context.Context, tx *gorm.DB) ([]*types.MatterRecord, error) {
	today := recordset.DayOf(time.Now())
	rows, err := s.recordRepo.GetByDay(ctx, tx, today)
	if err != nil {
		return nil, err
	}
	matters, err := s.matterRepo.GetEnabled(ctx, tx)
	if err != nil {
		return nil, err
	}
	enabled := make(map[uuid.UUID]bool, len(matters))
	for _, m := range matters {
		enabled[m.ID] = true
	}

	out := make([]*types.MatterRecord, 0, len(rows))
	for _, rec := range recordset.Deduplicate(rows) {
		if enabled[rec.MatterID] {
			out = append(out, rec)
		}
	}
	return out, nil
}

// History lists the deduplicated records for one matter, newest day first.
func (s *recordService) History(ctx context.Context, tx *gorm.DB, matterID uuid.UUID, window recordset.Window) ([]*types.MatterRecord, error) {
	if _, err := s.matterRepo.GetByID(ctx, tx, matterID); err != nil {
		return nil, err
	}
	rows, err := s.recordRepo.GetByMatterID(ctx, tx, matterID)
	if err != nil {
		return nil, err
	}

	deduped := recordset.Deduplicate(rows)
	if window != recordset.WindowAll && window.Valid() {
		today := recordset.DayOf(time.Now())
		start := today.AddDate(0, 0, -6)
		if window == recordset.WindowMonth {
			start = recordset.DayOf(today.AddDate(0, -1, 0)).AddDate(0, 0, 1)
		}
		kept := deduped[:0]
		for _, rec := range deduped {
			if !recordset.DayOf(rec.Day).Before(start) {
				kept = append(kept, rec)
			}
		}
		deduped = kept
	}
	sort.Slice(deduped, func(i, j int) bool { return deduped[i].Day.After(deduped[j].Day) })
	return deduped, nil
}

func (s *recordService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	record, err := s.recordRepo.GetByID(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := s.recordRepo.DeleteByID(ctx, tx, id); err != nil {
		s.log.Warn("Delete record failed", "error", err, "record_id", id)
		return err
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateDay(ctx, recordset.DayOf(record.Day))
	}
	return nil
}
