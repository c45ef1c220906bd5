package recordset

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/xjtang/lifelog-backend/internal/types"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(matterID uuid.UUID, on time.Time, createdAt time.Time) *types.MatterRecord {
	return &types.MatterRecord{
		ID:        uuid.New(),
		MatterID:  matterID,
		Day:       on,
		CreatedAt: createdAt,
	}
}

func TestDeduplicateLatestWins(t *testing.T) {
	matterID := uuid.New()
	jan1 := day(2024, time.January, 1)
	t1 := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, time.January, 1, 21, 0, 0, 0, time.UTC)

	good := uuid.New()
	bad := uuid.New()
	first := rec(matterID, jan1, t1)
	first.SingleOptionID = &good
	second := rec(matterID, jan1, t2)
	second.SingleOptionID = &bad

	got := Deduplicate([]*types.MatterRecord{first, second})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].ID != second.ID {
		t.Fatalf("expected later record %s to win, got %s", second.ID, got[0].ID)
	}
	if got[0].SingleOptionID == nil || *got[0].SingleOptionID != bad {
		t.Fatalf("expected winning record to carry the later selection")
	}
}

func TestDeduplicateNeverIncreasesAndIsUnique(t *testing.T) {
	matterA := uuid.New()
	matterB := uuid.New()
	input := []*types.MatterRecord{
		rec(matterA, day(2024, time.March, 1), day(2024, time.March, 1)),
		rec(matterA, day(2024, time.March, 1).Add(5*time.Hour), day(2024, time.March, 1).Add(1*time.Hour)),
		rec(matterA, day(2024, time.March, 2), day(2024, time.March, 2)),
		rec(matterB, day(2024, time.March, 1), day(2024, time.March, 1)),
	}

	got := Deduplicate(input)
	if len(got) > len(input) {
		t.Fatalf("dedup grew the set: %d > %d", len(got), len(input))
	}
	seen := make(map[dayKey]bool)
	for _, r := range got {
		key := dayKey{matterID: r.MatterID, day: DayOf(r.Day).Unix()}
		if seen[key] {
			t.Fatalf("duplicate (matter, day) pair in output: %+v", key)
		}
		seen[key] = true
	}
	// Same day for two different matters must both survive.
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	matterID := uuid.New()
	input := []*types.MatterRecord{
		rec(matterID, day(2024, time.May, 1), day(2024, time.May, 1)),
		rec(matterID, day(2024, time.May, 1), day(2024, time.May, 1).Add(time.Hour)),
		rec(matterID, day(2024, time.May, 3), day(2024, time.May, 3)),
	}

	once := Deduplicate(input)
	twice := Deduplicate(once)
	if len(once) != len(twice) {
		t.Fatalf("second pass changed size: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("second pass changed record at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestDeduplicateTieBreaksOnRecordID(t *testing.T) {
	matterID := uuid.New()
	on := day(2024, time.June, 10)
	at := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	a := rec(matterID, on, at)
	b := rec(matterID, on, at)
	want := a
	if b.ID.String() > a.ID.String() {
		want = b
	}

	forward := Deduplicate([]*types.MatterRecord{a, b})
	reversed := Deduplicate([]*types.MatterRecord{b, a})
	if len(forward) != 1 || len(reversed) != 1 {
		t.Fatalf("expected single record from both orders")
	}
	if forward[0].ID != want.ID || reversed[0].ID != want.ID {
		t.Fatalf("tie-break is order dependent: forward=%s reversed=%s want=%s",
			forward[0].ID, reversed[0].ID, want.ID)
	}
}

func TestDeduplicateEmptyInput(t *testing.T) {
	if got := Deduplicate(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %d records", len(got))
	}
}
