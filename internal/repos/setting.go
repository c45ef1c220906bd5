package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/types"
)

type SettingRepo interface {
	Get(ctx context.Context, tx *gorm.DB, key string) (*types.Setting, error)
	Upsert(ctx context.Context, tx *gorm.DB, key, value string) error
}

type settingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSettingRepo(db *gorm.DB, baseLog *logger.Logger) SettingRepo {
	repoLog := baseLog.With("repo", "SettingRepo")
	return &settingRepo{db: db, log: repoLog}
}

func (r *settingRepo) Get(ctx context.Context, tx *gorm.DB, key string) (*types.Setting, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Setting
	if err := transaction.WithContext(ctx).
		Where("key = ?", key).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *settingRepo) Upsert(ctx context.Context, tx *gorm.DB, key, value string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	row := &types.Setting{Key: key, Value: value}
	if err := transaction.WithContext(ctx).
		Where("key = ?", key).
		Assign(row).
		FirstOrCreate(row).Error; err != nil {
		return err
	}
	return nil
}
