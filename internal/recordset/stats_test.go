package recordset

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/xjtang/lifelog-backend/internal/types"
)

func TestStreakStopsAtFirstEmptyDay(t *testing.T) {
	m := moodMatter()
	now := time.Date(2024, time.July, 10, 15, 30, 0, 0, time.UTC)
	today := DayOf(now)

	records := []*types.MatterRecord{
		singleRec(m, today, "Good"),
		singleRec(m, today.AddDate(0, 0, -1), "Good"),
		// Nothing two days ago.
		singleRec(m, today.AddDate(0, 0, -3), "Bad"),
	}

	got := BuildOverview(now, WindowWeek, []*types.Matter{m}, records)
	if got.StreakDays != 2 {
		t.Fatalf("expected streak of 2, got %d", got.StreakDays)
	}
}

func TestStreakZeroWithoutTodayRecord(t *testing.T) {
	m := moodMatter()
	now := time.Date(2024, time.July, 10, 15, 30, 0, 0, time.UTC)
	records := []*types.MatterRecord{
		singleRec(m, DayOf(now).AddDate(0, 0, -1), "Good"),
	}

	got := BuildOverview(now, WindowWeek, []*types.Matter{m}, records)
	if got.StreakDays != 0 {
		t.Fatalf("expected streak of 0, got %d", got.StreakDays)
	}
}

func TestCompletionRateCappedAndMonotonic(t *testing.T) {
	m := moodMatter()
	now := time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)
	today := DayOf(now)

	var records []*types.MatterRecord
	prev := 0
	for i := 0; i < 14; i++ {
		// Duplicates on the same day collapse, so spread across days.
		r := singleRec(m, today.AddDate(0, 0, -i), "Good")
		records = append(records, r)

		got := BuildOverview(now, WindowWeek, []*types.Matter{m}, records)
		if got.CompletionRate < prev {
			t.Fatalf("completion rate decreased after adding a record: %d -> %d", prev, got.CompletionRate)
		}
		if got.CompletionRate > 100 {
			t.Fatalf("completion rate above cap: %d", got.CompletionRate)
		}
		prev = got.CompletionRate
	}

	final := BuildOverview(now, WindowWeek, []*types.Matter{m}, records)
	if final.CompletionRate != 100 {
		t.Fatalf("one matter recorded all 7 window days should hit 100, got %d", final.CompletionRate)
	}
}

func TestOrphanAndDisabledRecordsExcluded(t *testing.T) {
	m := moodMatter()
	disabled := moodMatter()
	disabled.Title = "Sleep"
	disabled.IsEnabled = false
	deletedMatterID := uuid.New()

	now := time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)
	today := DayOf(now)

	records := []*types.MatterRecord{
		singleRec(m, today, "Good"),
		rec(deletedMatterID, today, today),
		rec(disabled.ID, today, today),
	}

	got := BuildOverview(now, WindowAll, []*types.Matter{m, disabled}, records)
	if got.RecordCount != 1 {
		t.Fatalf("orphaned and disabled records must not count, got %d", got.RecordCount)
	}
	if got.EnabledMatters != 1 {
		t.Fatalf("expected 1 enabled matter, got %d", got.EnabledMatters)
	}
}

func TestWindowFiltering(t *testing.T) {
	m := moodMatter()
	now := time.Date(2024, time.July, 31, 12, 0, 0, 0, time.UTC)
	today := DayOf(now)

	records := []*types.MatterRecord{
		singleRec(m, today, "Good"),
		singleRec(m, today.AddDate(0, 0, -10), "Good"),
		singleRec(m, today.AddDate(0, 0, -60), "Bad"),
	}

	cases := []struct {
		window Window
		want   int
	}{
		{WindowWeek, 1},
		{WindowMonth, 2},
		{WindowAll, 3},
	}
	for _, tc := range cases {
		t.Run(string(tc.window), func(t *testing.T) {
			got := BuildOverview(now, tc.window, []*types.Matter{m}, records)
			if got.RecordCount != tc.want {
				t.Fatalf("window %s: expected %d records, got %d", tc.window, tc.want, got.RecordCount)
			}
		})
	}
}

func TestTrendClassification(t *testing.T) {
	cases := []struct {
		name   string
		delta  float64
		strong float64
		want   TrendBand
	}{
		{"strong_positive_at_threshold", 3, 3, TrendStrongPositive},
		{"positive_below_threshold", 2, 3, TrendPositive},
		{"flat", 0, 3, TrendFlat},
		{"negative", -1, 3, TrendNegative},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.delta, tc.strong)
			if got.Band != tc.want {
				t.Fatalf("classify(%v, %v)=%s, want %s", tc.delta, tc.strong, got.Band, tc.want)
			}
			if got.Delta != tc.delta {
				t.Fatalf("classify lost the delta: %v", got.Delta)
			}
		})
	}
}

func TestRecordTrendWeekOverWeek(t *testing.T) {
	m := moodMatter()
	// A Wednesday, so the current calendar week has three recordable days.
	now := time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)
	today := DayOf(now)
	weekStart := WeekStart(today)

	records := []*types.MatterRecord{
		singleRec(m, weekStart, "Good"),
		singleRec(m, weekStart.AddDate(0, 0, 1), "Good"),
		singleRec(m, weekStart.AddDate(0, 0, 2), "Good"),
		// One record in the previous week.
		singleRec(m, weekStart.AddDate(0, 0, -3), "Bad"),
	}

	got := BuildOverview(now, WindowAll, []*types.Matter{m}, records)
	if got.RecordTrend.Delta != 2 {
		t.Fatalf("expected week-over-week delta 2, got %v", got.RecordTrend.Delta)
	}
	if got.RecordTrend.Band != TrendPositive {
		t.Fatalf("expected positive band, got %s", got.RecordTrend.Band)
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday_fixed_point", day(2024, time.January, 1), day(2024, time.January, 1)},
		{"wednesday", day(2024, time.January, 3), day(2024, time.January, 1)},
		{"sunday_belongs_to_prior_monday", day(2024, time.January, 7), day(2024, time.January, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekStart(tc.in); !got.Equal(tc.want) {
				t.Fatalf("WeekStart(%v)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
