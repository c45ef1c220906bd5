package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/xjtang/lifelog-backend/internal/types"
)

func TestValidateMatter(t *testing.T) {
	existing := []*types.Matter{
		{ID: uuid.New(), Title: "Mood"},
		{ID: uuid.New(), Title: "Sleep"},
	}
	oneOption := []types.MatterOption{{ID: uuid.New(), Emoji: "😊", Title: "Good"}}

	cases := []struct {
		name       string
		input      MatterInput
		selfID     uuid.UUID
		wantReason string
	}{
		{
			name:  "valid_create",
			input: MatterInput{Title: "Exercise", Kind: types.MatterKindSingle, Options: oneOption},
		},
		{
			name:       "empty_title",
			input:      MatterInput{Title: "   ", Kind: types.MatterKindSingle, Options: oneOption},
			wantReason: ReasonEmptyTitle,
		},
		{
			name:       "duplicate_title_case_insensitive",
			input:      MatterInput{Title: "mood", Kind: types.MatterKindSingle, Options: oneOption},
			wantReason: ReasonDuplicateTitle,
		},
		{
			name:       "unknown_kind",
			input:      MatterInput{Title: "Exercise", Kind: "slider", Options: oneOption},
			wantReason: ReasonInvalidKind,
		},
		{
			name:       "create_without_options",
			input:      MatterInput{Title: "Exercise", Kind: types.MatterKindMulti},
			wantReason: ReasonNoOptions,
		},
		{
			name:   "edit_keeps_own_title",
			input:  MatterInput{Title: "Mood", Kind: types.MatterKindSingle, Options: oneOption},
			selfID: existing[0].ID,
		},
		{
			name: "edit_may_transiently_drop_all_options",
			input: MatterInput{
				Title: "Sleep", Kind: types.MatterKindSingle,
			},
			selfID: existing[1].ID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validateMatter(tc.input, existing, tc.selfID)
			if tc.wantReason == "" {
				if got != nil {
					t.Fatalf("expected valid, got %s (%s)", got.Reason, got.Message)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected rejection %s, got valid", tc.wantReason)
			}
			if got.Reason != tc.wantReason {
				t.Fatalf("expected reason %s, got %s", tc.wantReason, got.Reason)
			}
		})
	}
}

func TestValidateSelection(t *testing.T) {
	single := &types.Matter{
		ID:   uuid.New(),
		Kind: types.MatterKindSingle,
		Options: []types.MatterOption{
			{ID: uuid.New(), Title: "Bad"},
			{ID: uuid.New(), Title: "Good"},
		},
	}
	multi := &types.Matter{
		ID:   uuid.New(),
		Kind: types.MatterKindMulti,
		Options: []types.MatterOption{
			{ID: uuid.New(), Title: "Water"},
			{ID: uuid.New(), Title: "Run"},
		},
	}
	stranger := uuid.New()

	goodID := single.Options[1].ID

	cases := []struct {
		name       string
		matter     *types.Matter
		sel        RecordSelection
		wantReason string
	}{
		{
			name:   "single_valid",
			matter: single,
			sel:    RecordSelection{SingleOptionID: &goodID},
		},
		{
			name:   "single_clear_selection",
			matter: single,
			sel:    RecordSelection{},
		},
		{
			name:       "single_rejects_list",
			matter:     single,
			sel:        RecordSelection{SelectedOptionIDs: []uuid.UUID{goodID}},
			wantReason: ReasonInvalidInput,
		},
		{
			name:       "single_rejects_unknown_option",
			matter:     single,
			sel:        RecordSelection{SingleOptionID: &stranger},
			wantReason: ReasonInvalidOption,
		},
		{
			name:   "multi_valid",
			matter: multi,
			sel:    RecordSelection{SelectedOptionIDs: []uuid.UUID{multi.Options[0].ID, multi.Options[1].ID}},
		},
		{
			name:       "multi_rejects_single_field",
			matter:     multi,
			sel:        RecordSelection{SingleOptionID: &goodID},
			wantReason: ReasonInvalidInput,
		},
		{
			name:       "multi_rejects_unknown_option",
			matter:     multi,
			sel:        RecordSelection{SelectedOptionIDs: []uuid.UUID{stranger}},
			wantReason: ReasonInvalidOption,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validateSelection(tc.matter, tc.sel)
			if tc.wantReason == "" {
				if got != nil {
					t.Fatalf("expected valid, got %s", got.Reason)
				}
				return
			}
			if got == nil || got.Reason != tc.wantReason {
				t.Fatalf("expected %s, got %+v", tc.wantReason, got)
			}
		})
	}
}

func TestDedupeIDsKeepsFirstSeenOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := dedupeIDs([]uuid.UUID{a, b, a, b, a})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("unexpected result: %v", got)
	}
}
