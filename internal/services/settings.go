package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/repos"
	"github.com/xjtang/lifelog-backend/internal/types"
)

// ReminderSettings is the persisted reminder preference. Delivery itself is
// a platform concern and not handled here; this only stores what the client
// schedules against.
type ReminderSettings struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
}

const defaultReminderTime = "20:00"

var reminderTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type SettingsService interface {
	GetReminder(ctx context.Context, tx *gorm.DB) (ReminderSettings, error)
	SetReminder(ctx context.Context, tx *gorm.DB, settings ReminderSettings) (ReminderSettings, error)
}

type settingsService struct {
	db          *gorm.DB
	log         *logger.Logger
	settingRepo repos.SettingRepo
}

func NewSettingsService(db *gorm.DB, baseLog *logger.Logger, settingRepo repos.SettingRepo) SettingsService {
	return &settingsService{
		db:          db,
		log:         baseLog.With("service", "SettingsService"),
		settingRepo: settingRepo,
	}
}

func (s *settingsService) GetReminder(ctx context.Context, tx *gorm.DB) (ReminderSettings, error) {
	out := ReminderSettings{Enabled: false, Time: defaultReminderTime}

	enabled, err := s.settingRepo.Get(ctx, tx, types.SettingReminderEnabled)
	if err != nil {
		return out, err
	}
	if enabled != nil {
		out.Enabled, _ = strconv.ParseBool(enabled.Value)
	}

	at, err := s.settingRepo.Get(ctx, tx, types.SettingReminderTime)
	if err != nil {
		return out, err
	}
	if at != nil && reminderTimePattern.MatchString(at.Value) {
		out.Time = at.Value
	}
	return out, nil
}

func (s *settingsService) SetReminder(ctx context.Context, tx *gorm.DB, settings ReminderSettings) (ReminderSettings, error) {
	if !reminderTimePattern.MatchString(settings.Time) {
		return ReminderSettings{}, validationErr(ReasonInvalidInput, fmt.Sprintf("reminder time %q is not HH:MM", settings.Time))
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	err := transaction.Transaction(func(innerTx *gorm.DB) error {
		if err := s.settingRepo.Upsert(ctx, innerTx, types.SettingReminderEnabled, strconv.FormatBool(settings.Enabled)); err != nil {
			return err
		}
		return s.settingRepo.Upsert(ctx, innerTx, types.SettingReminderTime, settings.Time)
	})
	if err != nil {
		s.log.Warn("SetReminder: persist failed", "error", err)
		return ReminderSettings{}, err
	}
	return settings, nil
}
