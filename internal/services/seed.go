package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/repos"
	"github.com/xjtang/lifelog-backend/internal/types"
)

type SeedService interface {
	EnsureBuiltIns(ctx context.Context) error
}

type seedService struct {
	db         *gorm.DB
	log        *logger.Logger
	matterRepo repos.MatterRepo
}

func NewSeedService(db *gorm.DB, baseLog *logger.Logger, matterRepo repos.MatterRepo) SeedService {
	return &seedService{
		db:         db,
		log:        baseLog.With("service", "SeedService"),
		matterRepo: matterRepo,
	}
}

// EnsureBuiltIns seeds the four template matters exactly once. The gate is
// "any built-in matter exists", not a per-title check, so renaming or
// disabling a built-in never causes a reseed.
func (s *seedService) EnsureBuiltIns(ctx context.Context) error {
	seeded, err := s.matterRepo.HasBuiltIn(ctx, nil)
	if err != nil {
		s.log.Warn("EnsureBuiltIns: built-in check failed", "error", err)
		return err
	}
	if seeded {
		return nil
	}

	s.log.Info("Seeding built-in matters...")
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range builtInMatters() {
			if err := s.matterRepo.Create(ctx, tx, row); err != nil {
				return err
			}
		}
		return nil
	})
}

func builtInMatters() []*types.Matter {
	mood := &types.Matter{
		ID:    uuid.New(),
		Title: "Mood",
		Icon:  "heart.fill",
		Kind:  types.MatterKindSingle,
		Options: []types.MatterOption{
			{ID: uuid.New(), Emoji: "😢", Title: "Terrible"},
			{ID: uuid.New(), Emoji: "😔", Title: "Not great"},
			{ID: uuid.New(), Emoji: "😐", Title: "Okay"},
			{ID: uuid.New(), Emoji: "🙂", Title: "Fine"},
			{ID: uuid.New(), Emoji: "😊", Title: "Pretty good"},
			{ID: uuid.New(), Emoji: "😄", Title: "Happy"},
			{ID: uuid.New(), Emoji: "🤩", Title: "Ecstatic"},
		},
		AccentColorHex: "#FF3B30",
		IsEnabled:      true,
		IsBuiltIn:      true,
		DisplayOrder:   0,
	}
	sleep := &types.Matter{
		ID:    uuid.New(),
		Title: "Sleep",
		Icon:  "moon.stars.fill",
		Kind:  types.MatterKindSingle,
		Options: []types.MatterOption{
			{ID: uuid.New(), Emoji: "😴", Title: "Very poor"},
			{ID: uuid.New(), Emoji: "😪", Title: "Poor"},
			{ID: uuid.New(), Emoji: "😌", Title: "Okay"},
			{ID: uuid.New(), Emoji: "😊", Title: "Good"},
			{ID: uuid.New(), Emoji: "✨", Title: "Excellent"},
		},
		AccentColorHex: "#5856D6",
		IsEnabled:      true,
		IsBuiltIn:      true,
		DisplayOrder:   1,
	}
	// Health and hobby ship without options; the user fills them in before
	// recording (zero options only blocks brand-new user matters).
	health := &types.Matter{
		ID:             uuid.New(),
		Title:          "Health",
		Icon:           "heart.fill",
		Kind:           types.MatterKindMulti,
		AccentColorHex: "#34C759",
		IsEnabled:      true,
		IsBuiltIn:      true,
		DisplayOrder:   2,
	}
	hobby := &types.Matter{
		ID:             uuid.New(),
		Title:          "Hobby",
		Icon:           "star.fill",
		Kind:           types.MatterKindMulti,
		AccentColorHex: "#30B0C7",
		IsEnabled:      true,
		IsBuiltIn:      true,
		DisplayOrder:   3,
	}
	return []*types.Matter{mood, sleep, health, hobby}
}
