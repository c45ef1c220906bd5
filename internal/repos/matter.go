package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/types"
)

type MatterRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Matter) error
	Update(ctx context.Context, tx *gorm.DB, row *types.Matter) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Matter, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Matter, error)
	GetEnabled(ctx context.Context, tx *gorm.DB) ([]*types.Matter, error)
	HasBuiltIn(ctx context.Context, tx *gorm.DB) (bool, error)
	Reorder(ctx context.Context, tx *gorm.DB, orderedIDs []uuid.UUID) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type matterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMatterRepo(db *gorm.DB, baseLog *logger.Logger) MatterRepo {
	repoLog := baseLog.With("repo", "MatterRepo")
	return &matterRepo{db: db, log: repoLog}
}

func (r *matterRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Matter) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	return nil
}

func (r *matterRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Matter) error {
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

func (r *matterRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Matter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	var result types.Matter
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *matterRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Matter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Matter
	if err := transaction.WithContext(ctx).
		Order("display_order asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *matterRepo) GetEnabled(ctx context.Context, tx *gorm.DB) ([]*types.Matter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Matter
	if err := transaction.WithContext(ctx).
		Where("is_enabled = ?", true).
		Order("display_order asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *matterRepo) HasBuiltIn(ctx context.Context, tx *gorm.DB) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Matter{}).
		Where("is_built_in = ?", true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *matterRepo) Reorder(ctx context.Context, tx *gorm.DB, orderedIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(orderedIDs) == 0 {
		return nil
	}

	for i, id := range orderedIDs {
		if err := transaction.WithContext(ctx).
			Model(&types.Matter{}).
			Where("id = ?", id).
			Update("display_order", i).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *matterRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil
	}

	// Records referencing this matter stay behind on purpose; read paths
	// filter them against the surviving matter set.
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Matter{}).Error; err != nil {
		return err
	}
	return nil
}
