package recordset

import (
	"github.com/google/uuid"

	"github.com/xjtang/lifelog-backend/internal/types"
)

type dayKey struct {
	matterID uuid.UUID
	day      int64
}

// Deduplicate collapses a record set down to at most one record per
// (matter, calendar day) pair. The record with the greatest CreatedAt wins;
// identical timestamps fall back to the lexicographically greater record id,
// so the result does not depend on input order. Output keeps the first-seen
// order of each (matter, day) group.
func Deduplicate(records []*types.MatterRecord) []*types.MatterRecord {
	if len(records) == 0 {
		return nil
	}

	winners := make(map[dayKey]*types.MatterRecord, len(records))
	order := make([]dayKey, 0, len(records))
	for _, rec := range records {
		key := dayKey{matterID: rec.MatterID, day: DayOf(rec.Day).Unix()}
		current, ok := winners[key]
		if !ok {
			winners[key] = rec
			order = append(order, key)
			continue
		}
		if beats(rec, current) {
			winners[key] = rec
		}
	}

	out := make([]*types.MatterRecord, 0, len(order))
	for _, key := range order {
		out = append(out, winners[key])
	}
	return out
}

func beats(a, b *types.MatterRecord) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}
