package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/repos"
	"github.com/xjtang/lifelog-backend/internal/types"
)

// MatterInput is the edit-form payload for creating or updating a matter.
// Options without an id are treated as new and get one assigned.
type MatterInput struct {
	Title          string               `json:"title"`
	Icon           string               `json:"icon"`
	Kind           types.MatterKind     `json:"kind"`
	Options        []types.MatterOption `json:"options"`
	AccentColorHex string               `json:"accent_color_hex"`
}

type MatterService interface {
	Create(ctx context.Context, tx *gorm.DB, input MatterInput) (*types.Matter, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, input MatterInput) (*types.Matter, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Matter, error)
	Get(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Matter, error)
	SetEnabled(ctx context.Context, tx *gorm.DB, id uuid.UUID, enabled bool) (*types.Matter, error)
	Reorder(ctx context.Context, tx *gorm.DB, orderedIDs []uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type matterService struct {
	db         *gorm.DB
	log        *logger.Logger
	matterRepo repos.MatterRepo
}

func NewMatterService(db *gorm.DB, baseLog *logger.Logger, matterRepo repos.MatterRepo) MatterService {
	return &matterService{
		db:         db,
		log:        baseLog.With("service", "MatterService"),
		matterRepo: matterRepo,
	}
}

// validateMatter applies the save rules: a title is required and unique
// case-insensitively, and a brand new selectable matter needs at least one
// option. An existing matter may transiently hold zero options mid-edit, so
// the option rule only gates creation.
func validateMatter(input MatterInput, existing []*types.Matter, selfID uuid.UUID) *ValidationError {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return validationErr(ReasonEmptyTitle, "matter title must not be empty")
	}
	if !input.Kind.Valid() {
		return validationErr(ReasonInvalidKind, fmt.Sprintf("unknown matter kind %q", input.Kind))
	}
	for _, m := range existing {
		if m.ID != selfID && strings.EqualFold(m.Title, title) {
			return validationErr(ReasonDuplicateTitle, fmt.Sprintf("a matter titled %q already exists", m.Title))
		}
	}
	if selfID == uuid.Nil && len(input.Options) == 0 {
		return validationErr(ReasonNoOptions, "a selectable matter needs at least one option")
	}
	return nil
}

func normalizeOptions(options []types.MatterOption) []types.MatterOption {
	out := make([]types.MatterOption, 0, len(options))
	for _, opt := range options {
		if opt.ID == uuid.Nil {
			opt.ID = uuid.New()
		}
		opt.Title = strings.TrimSpace(opt.Title)
		out = append(out, opt)
	}
	return out
}

func (s *matterService) Create(ctx context.Context, tx *gorm.DB, input MatterInput) (*types.Matter, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	existing, err := s.matterRepo.GetAll(ctx, transaction)
	if err != nil {
		s.log.Warn("Create: load matters failed", "error", err)
		return nil, err
	}
	if verr := validateMatter(input, existing, uuid.Nil); verr != nil {
		return nil, verr
	}

	row := &types.Matter{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(input.Title),
		Icon:           input.Icon,
		Kind:           input.Kind,
		Options:        normalizeOptions(input.Options),
		AccentColorHex: accentOrDefault(input.AccentColorHex),
		IsEnabled:      true,
		DisplayOrder:   len(existing),
	}
	if err := s.matterRepo.Create(ctx, transaction, row); err != nil {
		s.log.Warn("Create: persist failed", "error", err, "title", row.Title)
		return nil, err
	}
	s.log.Info("Matter created", "matter_id", row.ID, "title", row.Title)
	return row, nil
}

func (s *matterService) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, input MatterInput) (*types.Matter, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	row, err := s.matterRepo.GetByID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	existing, err := s.matterRepo.GetAll(ctx, transaction)
	if err != nil {
		s.log.Warn("Update: load matters failed", "error", err)
		return nil, err
	}
	if verr := validateMatter(input, existing, id); verr != nil {
		return nil, verr
	}

	row.Title = strings.TrimSpace(input.Title)
	row.Icon = input.Icon
	row.Kind = input.Kind
	row.Options = normalizeOptions(input.Options)
	row.AccentColorHex = accentOrDefault(input.AccentColorHex)
	if err := s.matterRepo.Update(ctx, transaction, row); err != nil {
		s.log.Warn("Update: persist failed", "error", err, "matter_id", id)
		return nil, err
	}
	return row, nil
}

func (s *matterService) List(ctx context.Context, tx *gorm.DB) ([]*types.Matter, error) {
	return s.matterRepo.GetAll(ctx, tx)
}

func (s *matterService) Get(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Matter, error) {
	return s.matterRepo.GetByID(ctx, tx, id)
}

func (s *matterService) SetEnabled(ctx context.Context, tx *gorm.DB, id uuid.UUID, enabled bool) (*types.Matter, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	row, err := s.matterRepo.GetByID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	row.IsEnabled = enabled
	if err := s.matterRepo.Update(ctx, transaction, row); err != nil {
		s.log.Warn("SetEnabled: persist failed", "error", err, "matter_id", id)
		return nil, err
	}
	return row, nil
}

func (s *matterService) Reorder(ctx context.Context, tx *gorm.DB, orderedIDs []uuid.UUID) error {
	if len(orderedIDs) == 0 {
		return validationErr(ReasonInvalidInput, "reorder needs at least one matter id")
	}
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	return transaction.Transaction(func(innerTx *gorm.DB) error {
		return s.matterRepo.Reorder(ctx, innerTx, orderedIDs)
	})
}

// Delete soft-removes the matter. Its records are kept as orphans; every
// read path checks matter existence, so they drop out of views without a
// cascade.
func (s *matterService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if _, err := s.matterRepo.GetByID(ctx, transaction, id); err != nil {
		return err
	}
	if err := s.matterRepo.SoftDeleteByID(ctx, transaction, id); err != nil {
		s.log.Warn("Delete: persist failed", "error", err, "matter_id", id)
		return err
	}
	s.log.Info("Matter deleted, records left as orphans", "matter_id", id)
	return nil
}

func accentOrDefault(hex string) string {
	if strings.TrimSpace(hex) == "" {
		return "#007AFF"
	}
	return hex
}
