package services

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/xjtang/lifelog-backend/internal/types"
)

func TestSelectedCount(t *testing.T) {
	optA := types.MatterOption{ID: uuid.New(), Title: "Water"}
	optB := types.MatterOption{ID: uuid.New(), Title: "Salad"}
	dangling := uuid.New()

	single := &types.Matter{
		Kind:    types.MatterKindSingle,
		Options: datatypes.JSONSlice[types.MatterOption]{optA, optB},
	}
	multi := &types.Matter{
		Kind:    types.MatterKindMulti,
		Options: datatypes.JSONSlice[types.MatterOption]{optA, optB},
	}

	cases := []struct {
		name   string
		matter *types.Matter
		rec    *types.MatterRecord
		want   int
	}{
		{
			name:   "single with valid selection",
			matter: single,
			rec:    &types.MatterRecord{SingleOptionID: &optA.ID},
			want:   1,
		},
		{
			name:   "single with no selection",
			matter: single,
			rec:    &types.MatterRecord{},
			want:   0,
		},
		{
			name:   "single with removed option",
			matter: single,
			rec:    &types.MatterRecord{SingleOptionID: &dangling},
			want:   0,
		},
		{
			name:   "multi counts only resolvable options",
			matter: multi,
			rec: &types.MatterRecord{
				SelectedOptionIDs: datatypes.JSONSlice[uuid.UUID]{optA.ID, dangling, optB.ID},
			},
			want: 2,
		},
		{
			name:   "multi with nothing selected",
			matter: multi,
			rec:    &types.MatterRecord{},
			want:   0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectedCount(tc.matter, tc.rec); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
