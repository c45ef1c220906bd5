package recordset

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/xjtang/lifelog-backend/internal/types"
)

func moodMatter() *types.Matter {
	return &types.Matter{
		ID:    uuid.New(),
		Title: "Mood",
		Kind:  types.MatterKindSingle,
		Options: []types.MatterOption{
			{ID: uuid.New(), Emoji: "😢", Title: "Bad"},
			{ID: uuid.New(), Emoji: "😊", Title: "Good"},
		},
		IsEnabled: true,
	}
}

func singleRec(m *types.Matter, on time.Time, optionTitle string) *types.MatterRecord {
	r := rec(m.ID, on, on.Add(20*time.Hour))
	for _, opt := range m.Options {
		if opt.Title == optionTitle {
			id := opt.ID
			r.SingleOptionID = &id
		}
	}
	return r
}

func TestWeeklyBucketPicksMostFrequentLabel(t *testing.T) {
	m := moodMatter()
	// Jan 1-3 2024 share an ISO week (Mon Jan 1).
	records := []*types.MatterRecord{
		singleRec(m, day(2024, time.January, 1), "Good"),
		singleRec(m, day(2024, time.January, 2), "Good"),
		singleRec(m, day(2024, time.January, 3), "Bad"),
	}

	got := Bucket(BuildSeries(m, records), GranularityWeek)
	if len(got) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got))
	}
	if got[0].Label != "Good" {
		t.Fatalf("expected representative label Good, got %q", got[0].Label)
	}
	// Good is the second option, so its plotted value is 2 (1-based index).
	if got[0].Value != 2 {
		t.Fatalf("expected representative value 2, got %v", got[0].Value)
	}
	if !got[0].Day.Equal(day(2024, time.January, 1)) {
		t.Fatalf("expected bucket anchored at week start, got %v", got[0].Day)
	}
}

func TestBucketTieBreaksOnFirstOccurrence(t *testing.T) {
	m := moodMatter()
	records := []*types.MatterRecord{
		singleRec(m, day(2024, time.January, 2), "Bad"),
		singleRec(m, day(2024, time.January, 3), "Good"),
	}

	got := Bucket(BuildSeries(m, records), GranularityWeek)
	if len(got) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got))
	}
	if got[0].Label != "Bad" {
		t.Fatalf("1-1 tie should keep the first occurrence, got %q", got[0].Label)
	}
}

func TestBucketsSortedAndNeverFabricated(t *testing.T) {
	m := moodMatter()
	// Two weeks of data with an empty week between them, fed out of order.
	records := []*types.MatterRecord{
		singleRec(m, day(2024, time.January, 17), "Bad"),
		singleRec(m, day(2024, time.January, 1), "Good"),
		singleRec(m, day(2024, time.January, 2), "Good"),
	}

	got := Bucket(BuildSeries(m, records), GranularityWeek)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets (gap week omitted), got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Day.Before(got[i].Day) {
			t.Fatalf("buckets not ascending: %v then %v", got[i-1].Day, got[i].Day)
		}
	}
	if !got[0].Day.Equal(day(2024, time.January, 1)) || !got[1].Day.Equal(day(2024, time.January, 15)) {
		t.Fatalf("unexpected bucket anchors: %v, %v", got[0].Day, got[1].Day)
	}
}

func TestMonthlyBucketAnchorsAtMonthStart(t *testing.T) {
	m := moodMatter()
	records := []*types.MatterRecord{
		singleRec(m, day(2024, time.February, 10), "Good"),
		singleRec(m, day(2024, time.February, 20), "Good"),
		singleRec(m, day(2024, time.March, 5), "Bad"),
	}

	got := Bucket(BuildSeries(m, records), GranularityMonth)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	if !got[0].Day.Equal(day(2024, time.February, 1)) {
		t.Fatalf("expected February anchor, got %v", got[0].Day)
	}
	if got[1].Label != "Bad" {
		t.Fatalf("expected March bucket label Bad, got %q", got[1].Label)
	}
}

func TestDanglingSelectionExcludedFromBuckets(t *testing.T) {
	m := moodMatter()
	orphanOption := uuid.New()
	dangling := rec(m.ID, day(2024, time.January, 2), day(2024, time.January, 2))
	dangling.SingleOptionID = &orphanOption

	records := []*types.MatterRecord{
		singleRec(m, day(2024, time.January, 1), "Good"),
		dangling,
	}

	series := BuildSeries(m, records)
	if len(series) != 2 {
		t.Fatalf("expected 2 series points, got %d", len(series))
	}
	if series[1].HasSelection {
		t.Fatalf("dangling option id must read as no selection, not an error")
	}

	got := Bucket(series, GranularityWeek)
	if len(got) != 1 {
		t.Fatalf("expected dangling point to stay out of buckets, got %d buckets", len(got))
	}
	if got[0].Label != "Good" {
		t.Fatalf("expected Good, got %q", got[0].Label)
	}
}

func TestMultiSelectSeriesPoint(t *testing.T) {
	m := &types.Matter{
		ID:    uuid.New(),
		Title: "Health",
		Kind:  types.MatterKindMulti,
		Options: []types.MatterOption{
			{ID: uuid.New(), Emoji: "💧", Title: "Water"},
			{ID: uuid.New(), Emoji: "🏃", Title: "Run"},
			{ID: uuid.New(), Emoji: "🥗", Title: "Salad"},
		},
		IsEnabled: true,
	}

	r := rec(m.ID, day(2024, time.April, 1), day(2024, time.April, 1))
	// Stored out of option order plus one id that no longer resolves.
	r.SelectedOptionIDs = []uuid.UUID{m.Options[2].ID, uuid.New(), m.Options[0].ID}

	series := BuildSeries(m, []*types.MatterRecord{r})
	if len(series) != 1 {
		t.Fatalf("expected 1 point, got %d", len(series))
	}
	if series[0].Label != "Water, Salad" {
		t.Fatalf("expected label joined in option order, got %q", series[0].Label)
	}
	if series[0].Value != 2 {
		t.Fatalf("expected value = resolvable selection count 2, got %v", series[0].Value)
	}
}

func TestOptionStatsOrdering(t *testing.T) {
	m := moodMatter()
	records := []*types.MatterRecord{
		singleRec(m, day(2024, time.January, 1), "Good"),
		singleRec(m, day(2024, time.January, 2), "Good"),
		singleRec(m, day(2024, time.January, 3), "Bad"),
		rec(m.ID, day(2024, time.January, 4), day(2024, time.January, 4)),
	}

	got := OptionStats(m, records)
	if len(got) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(got))
	}
	if got[0].Label != "Good" || got[0].Count != 2 {
		t.Fatalf("expected Good x2 first, got %+v", got[0])
	}
	if got[1].Count != 1 || got[2].Count != 1 {
		t.Fatalf("expected singleton tail, got %+v", got[1:])
	}
	if got[1].Label > got[2].Label {
		t.Fatalf("equal counts must sort by label: %q before %q", got[1].Label, got[2].Label)
	}
}
