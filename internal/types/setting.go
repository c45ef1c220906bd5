package types

import "time"

// Setting is a small key/value row for user preferences the app used to keep
// in UserDefaults (reminder toggle, reminder time).
type Setting struct {
	Key       string    `gorm:"primaryKey;column:key" json:"key"`
	Value     string    `gorm:"column:value;not null;default:''" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Setting) TableName() string { return "setting" }

const (
	SettingReminderEnabled = "reminder_enabled"
	SettingReminderTime    = "reminder_time"
)
