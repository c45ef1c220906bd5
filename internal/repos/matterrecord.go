package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/types"
)

type MatterRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.MatterRecord) error
	Update(ctx context.Context, tx *gorm.DB, row *types.MatterRecord) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MatterRecord, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.MatterRecord, error)
	GetByMatterID(ctx context.Context, tx *gorm.DB, matterID uuid.UUID) ([]*types.MatterRecord, error)
	GetByMatterAndDay(ctx context.Context, tx *gorm.DB, matterID uuid.UUID, day time.Time) ([]*types.MatterRecord, error)
	GetByDay(ctx context.Context, tx *gorm.DB, day time.Time) ([]*types.MatterRecord, error)
	GetSince(ctx context.Context, tx *gorm.DB, from time.Time) ([]*types.MatterRecord, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type matterRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMatterRecordRepo(db *gorm.DB, baseLog *logger.Logger) MatterRecordRepo {
	repoLog := baseLog.With("repo", "MatterRecordRepo")
	return &matterRecordRepo{db: db, log: repoLog}
}

func (r *matterRecordRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.MatterRecord) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return err
	}
	return nil
}

func (r *matterRecordRepo) Update(ctx context.Context, tx *gorm.DB, row *types.MatterRecord) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	return nil
}

func (r *matterRecordRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MatterRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	var result types.MatterRecord
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *matterRecordRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.MatterRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.MatterRecord
	if err := transaction.WithContext(ctx).
		Order("day asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *matterRecordRepo) GetByMatterID(ctx context.Context, tx *gorm.DB, matterID uuid.UUID) ([]*types.MatterRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.MatterRecord
	if matterID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("matter_id = ?", matterID).
		Order("day asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *matterRecordRepo) GetByMatterAndDay(ctx context.Context, tx *gorm.DB, matterID uuid.UUID, day time.Time) ([]*types.MatterRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.MatterRecord
	if matterID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("matter_id = ? AND day >= ? AND day < ?", matterID, day, day.AddDate(0, 0, 1)).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *matterRecordRepo) GetByDay(ctx context.Context, tx *gorm.DB, day time.Time) ([]*types.MatterRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.MatterRecord
	if err := transaction.WithContext(ctx).
		Where("day >= ? AND day < ?", day, day.AddDate(0, 0, 1)).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *matterRecordRepo) GetSince(ctx context.Context, tx *gorm.DB, from time.Time) ([]*types.MatterRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.MatterRecord
	if err := transaction.WithContext(ctx).
		Where("day >= ?", from).
		Order("day asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *matterRecordRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.MatterRecord{}).Error; err != nil {
		return err
	}
	return nil
}
