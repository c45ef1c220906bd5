package recordset

import (
	"time"

	"github.com/google/uuid"

	"github.com/xjtang/lifelog-backend/internal/types"
)

type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

func (w Window) Valid() bool {
	return w == WindowWeek || w == WindowMonth || w == WindowAll
}

type TrendBand string

const (
	TrendStrongPositive TrendBand = "strong_positive"
	TrendPositive       TrendBand = "positive"
	TrendFlat           TrendBand = "flat"
	TrendNegative       TrendBand = "negative"
)

type Trend struct {
	Delta float64   `json:"delta"`
	Band  TrendBand `json:"band"`
}

// Band thresholds are presentation tuning, not contract.
const (
	strongCountDelta  = 3
	strongRateDelta   = 15
	strongStreakDelta = 7
)

// Overview is the statistics card row: counts over the selected window plus
// week-over-week trends computed against the preceding calendar week.
type Overview struct {
	Window          Window `json:"window"`
	RecordCount     int    `json:"record_count"`
	EnabledMatters  int    `json:"enabled_matters"`
	StreakDays      int    `json:"streak_days"`
	CompletionRate  int    `json:"completion_rate"`
	RecordTrend     Trend  `json:"record_trend"`
	CompletionTrend Trend  `json:"completion_trend"`
	StreakTrend     Trend  `json:"streak_trend"`
}

// BuildOverview computes the overview for the given moment. Records are
// collapsed to one per (matter, day) first, and records whose matter is
// missing or disabled are dropped entirely: orphans stay in the store but
// never count.
//
// Completion rate is approximate on purpose: it divides raw record volume
// by (enabled matters x window days) without checking that every matter was
// recorded every day. Capped at 100.
func BuildOverview(now time.Time, window Window, matters []*types.Matter, records []*types.MatterRecord) Overview {
	today := DayOf(now)

	enabled := make(map[uuid.UUID]bool, len(matters))
	for _, m := range matters {
		if m.IsEnabled {
			enabled[m.ID] = true
		}
	}

	valid := make([]*types.MatterRecord, 0, len(records))
	for _, rec := range Deduplicate(records) {
		if enabled[rec.MatterID] {
			valid = append(valid, rec)
		}
	}

	start := windowStart(today, window, valid)
	windowDays := DaysBetween(start, today)

	filtered := make([]*types.MatterRecord, 0, len(valid))
	for _, rec := range valid {
		if !DayOf(rec.Day).Before(start) {
			filtered = append(filtered, rec)
		}
	}

	days := recordedDays(valid)

	thisWeekStart := WeekStart(today)
	prevWeekStart := thisWeekStart.AddDate(0, 0, -7)
	prevWeekEnd := thisWeekStart.AddDate(0, 0, -1)

	thisWeekCount := countBetween(valid, thisWeekStart, today)
	prevWeekCount := countBetween(valid, prevWeekStart, prevWeekEnd)

	thisWeekRate := completionRate(thisWeekCount, len(enabled), DaysBetween(thisWeekStart, today))
	prevWeekRate := completionRate(prevWeekCount, len(enabled), 7)

	streak := streakEnding(today, days)
	prevStreak := streakEnding(prevWeekEnd, days)

	return Overview{
		Window:          window,
		RecordCount:     len(filtered),
		EnabledMatters:  len(enabled),
		StreakDays:      streak,
		CompletionRate:  completionRate(len(filtered), len(enabled), windowDays),
		RecordTrend:     classify(float64(thisWeekCount-prevWeekCount), strongCountDelta),
		CompletionTrend: classify(float64(thisWeekRate-prevWeekRate), strongRateDelta),
		StreakTrend:     classify(float64(streak-prevStreak), strongStreakDelta),
	}
}

// windowStart returns the first day included in the window. The week window
// is the last 7 calendar days ending today; the month window runs from the
// same calendar date one month back, exclusive; all-time starts at the
// earliest surviving record.
func windowStart(today time.Time, window Window, valid []*types.MatterRecord) time.Time {
	switch window {
	case WindowWeek:
		return today.AddDate(0, 0, -6)
	case WindowMonth:
		return DayOf(today.AddDate(0, -1, 0)).AddDate(0, 0, 1)
	default:
		earliest := today
		for _, rec := range valid {
			if day := DayOf(rec.Day); day.Before(earliest) {
				earliest = day
			}
		}
		return earliest
	}
}

func recordedDays(records []*types.MatterRecord) map[int64]bool {
	days := make(map[int64]bool, len(records))
	for _, rec := range records {
		days[DayOf(rec.Day).Unix()] = true
	}
	return days
}

// streakEnding walks backward from `end` one day at a time; the streak
// extends while each day has at least one record and stops on the first
// empty day. Zero when `end` itself has no record.
func streakEnding(end time.Time, days map[int64]bool) int {
	streak := 0
	for d := DayOf(end); days[d.Unix()]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func countBetween(records []*types.MatterRecord, start, end time.Time) int {
	count := 0
	for _, rec := range records {
		day := DayOf(rec.Day)
		if !day.Before(start) && !day.After(end) {
			count++
		}
	}
	return count
}

func completionRate(count, enabledMatters, days int) int {
	if enabledMatters <= 0 || days <= 0 {
		return 0
	}
	rate := int(float64(count) / float64(enabledMatters*days) * 100)
	if rate > 100 {
		return 100
	}
	return rate
}

func classify(delta float64, strongThreshold float64) Trend {
	switch {
	case delta >= strongThreshold:
		return Trend{Delta: delta, Band: TrendStrongPositive}
	case delta > 0:
		return Trend{Delta: delta, Band: TrendPositive}
	case delta == 0:
		return Trend{Delta: delta, Band: TrendFlat}
	default:
		return Trend{Delta: delta, Band: TrendNegative}
	}
}
