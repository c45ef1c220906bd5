package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MatterRecord is one submission for one matter on one day. Day is always
// normalized to local midnight before it reaches the store; CreatedAt is
// wall-clock and only used to pick a winner between same-day duplicates.
//
// MatterID is a plain reference, not an owned association: deleting a matter
// leaves its records behind as orphans, and read paths filter them out.
type MatterRecord struct {
	ID                uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	MatterID          uuid.UUID                      `gorm:"type:uuid;not null;index:idx_record_matter_day" json:"matter_id"`
	Day               time.Time                      `gorm:"column:day;not null;index:idx_record_matter_day" json:"day"`
	SingleOptionID    *uuid.UUID                     `gorm:"type:uuid;column:single_option_id" json:"single_option_id,omitempty"`
	SelectedOptionIDs datatypes.JSONSlice[uuid.UUID] `gorm:"column:selected_option_ids" json:"selected_option_ids"`
	CreatedAt         time.Time                      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time                      `gorm:"not null" json:"updated_at"`
}

func (MatterRecord) TableName() string { return "matter_record" }

// HasSelection reports whether the record carries any selection at all,
// resolvable or not.
func (r *MatterRecord) HasSelection() bool {
	return r.SingleOptionID != nil || len(r.SelectedOptionIDs) > 0
}
