package recordset

import (
	"sort"
	"time"

	"github.com/xjtang/lifelog-backend/internal/types"
)

type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) Valid() bool {
	return g == GranularityWeek || g == GranularityMonth
}

// Bucket rolls a date-ascending series up into one point per calendar week
// or month. Each bucket's label is its most frequent label, ties broken by
// first occurrence inside the bucket; the value comes from the first point
// in the bucket carrying that label. Buckets with no points are omitted, so
// callers must not assume bucket continuity. Points without a resolvable
// selection never contribute.
func Bucket(points []Point, granularity Granularity) []Point {
	anchor := WeekStart
	if granularity == GranularityMonth {
		anchor = MonthStart
	}

	grouped := make(map[int64][]Point)
	starts := make([]time.Time, 0)
	for _, p := range points {
		if !p.HasSelection {
			continue
		}
		start := anchor(p.Day)
		key := start.Unix()
		if _, ok := grouped[key]; !ok {
			starts = append(starts, start)
		}
		grouped[key] = append(grouped[key], p)
	}

	out := make([]Point, 0, len(starts))
	for _, start := range starts {
		bucket := grouped[start.Unix()]
		label := mostCommonLabel(bucket)
		value := 0.0
		for _, p := range bucket {
			if p.Label == label {
				value = p.Value
				break
			}
		}
		out = append(out, Point{Day: start, Value: value, Label: label, HasSelection: true})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// mostCommonLabel picks the label with the highest count; on equal counts
// the label seen first in the bucket wins.
func mostCommonLabel(points []Point) string {
	counts := make(map[string]int, len(points))
	for _, p := range points {
		counts[p.Label]++
	}
	best := ""
	bestCount := 0
	for _, p := range points {
		if counts[p.Label] > bestCount {
			best = p.Label
			bestCount = counts[p.Label]
		}
	}
	return best
}

// OptionStat is one slice of the per-matter distribution pie.
type OptionStat struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// OptionStats counts how often each resolved label occurs across a matter's
// records (same-day duplicates collapsed first). Records with no resolvable
// selection are tallied under NoSelectionLabel, matching the history view.
// Sorted by descending count, then label, for a stable legend order.
func OptionStats(matter *types.Matter, records []*types.MatterRecord) []OptionStat {
	if matter == nil {
		return nil
	}

	own := make([]*types.MatterRecord, 0, len(records))
	for _, rec := range records {
		if rec.MatterID == matter.ID {
			own = append(own, rec)
		}
	}
	own = Deduplicate(own)

	counts := make(map[string]int)
	for _, rec := range own {
		label, _, _ := Resolve(matter, rec)
		counts[label]++
	}

	out := make([]OptionStat, 0, len(counts))
	for label, count := range counts {
		out = append(out, OptionStat{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
