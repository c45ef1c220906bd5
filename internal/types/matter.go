package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MatterKind string

const (
	MatterKindSingle MatterKind = "single"
	MatterKindMulti  MatterKind = "multi"
)

func (k MatterKind) Valid() bool {
	return k == MatterKindSingle || k == MatterKindMulti
}

// MatterOption is one selectable choice on a Matter. Options live inside the
// matter row as a JSON array, mirroring the embedded document the app stores.
type MatterOption struct {
	ID    uuid.UUID `json:"id"`
	Emoji string    `json:"emoji"`
	Title string    `json:"title"`
}

func (o MatterOption) DisplayText() string {
	if strings.TrimSpace(o.Emoji) == "" {
		return o.Title
	}
	return o.Emoji + " " + o.Title
}

// Matter is a tracked life aspect (mood, sleep, ...). Titles are unique
// case-insensitively; uniqueness is enforced by the service layer so the
// comparison rule stays in one place.
type Matter struct {
	ID             uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string                            `gorm:"column:title;not null" json:"title"`
	Icon           string                            `gorm:"column:icon;not null;default:''" json:"icon"`
	Kind           MatterKind                        `gorm:"column:kind;not null;default:'single'" json:"kind"`
	Options        datatypes.JSONSlice[MatterOption] `gorm:"column:options" json:"options"`
	AccentColorHex string                            `gorm:"column:accent_color_hex;not null;default:'#007AFF'" json:"accent_color_hex"`
	IsEnabled      bool                              `gorm:"column:is_enabled;not null;default:true" json:"is_enabled"`
	IsBuiltIn      bool                              `gorm:"column:is_built_in;not null;default:false" json:"is_built_in"`
	DisplayOrder   int                               `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt      time.Time                         `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time                         `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt                    `gorm:"index" json:"deleted_at,omitempty"`
}

func (Matter) TableName() string { return "matter" }

// Option resolves an option id against the matter's current option list.
// A miss is normal after edits; callers treat it as "no selection".
func (m *Matter) Option(id uuid.UUID) (MatterOption, bool) {
	for _, opt := range m.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return MatterOption{}, false
}

// OptionIndex returns the 1-based position of the option, or 0 when the id
// no longer resolves.
func (m *Matter) OptionIndex(id uuid.UUID) int {
	for i, opt := range m.Options {
		if opt.ID == id {
			return i + 1
		}
	}
	return 0
}
