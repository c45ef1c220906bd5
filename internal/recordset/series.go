package recordset

import (
	"sort"
	"strings"
	"time"

	"github.com/xjtang/lifelog-backend/internal/types"
)

// NoSelectionLabel stands in for records whose selection is empty or whose
// option ids no longer resolve against the matter. Dangling references are
// data, not errors: options may have been removed after the record was made.
const NoSelectionLabel = "No selection"

// Point is one charted day for a matter: the numeric value plotted on the
// trend line and the label shown on it.
type Point struct {
	Day          time.Time `json:"day"`
	Value        float64   `json:"value"`
	Label        string    `json:"label"`
	HasSelection bool      `json:"has_selection"`
}

// BuildSeries turns a matter's records into a date-ascending series of
// points. Input may contain same-day duplicates; they are collapsed first.
// Records belonging to other matters are ignored.
//
// Values follow the chart contract: for single-select the 1-based index of
// the chosen option among the matter's options, for multi-select the count
// of still-resolvable selected options. Labels are the chosen option title,
// or the comma-joined titles for multi-select.
func BuildSeries(matter *types.Matter, records []*types.MatterRecord) []Point {
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

	points := make([]Point, 0, len(own))
	for _, rec := range own {
		label, value, ok := Resolve(matter, rec)
		points = append(points, Point{
			Day:          DayOf(rec.Day),
			Value:        value,
			Label:        label,
			HasSelection: ok,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })
	return points
}

// Resolve maps a record's selection onto the matter's current options.
// ok is false when nothing resolves, including dangling option ids.
func Resolve(matter *types.Matter, rec *types.MatterRecord) (label string, value float64, ok bool) {
	switch matter.Kind {
	case types.MatterKindSingle:
		if rec.SingleOptionID == nil {
			return NoSelectionLabel, 0, false
		}
		opt, found := matter.Option(*rec.SingleOptionID)
		if !found {
			return NoSelectionLabel, 0, false
		}
		return opt.Title, float64(matter.OptionIndex(opt.ID)), true
	case types.MatterKindMulti:
		// Walk the matter's option order so the joined label is stable
		// regardless of the order ids were stored in.
		titles := make([]string, 0, len(rec.SelectedOptionIDs))
		for _, opt := range matter.Options {
			for _, id := range rec.SelectedOptionIDs {
				if id == opt.ID {
					titles = append(titles, opt.Title)
					break
				}
			}
		}
		if len(titles) == 0 {
			return NoSelectionLabel, 0, false
		}
		return strings.Join(titles, ", "), float64(len(titles)), true
	}
	return NoSelectionLabel, 0, false
}
