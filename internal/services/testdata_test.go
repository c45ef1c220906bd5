package services

import (
	"math/rand"
	"testing"
)

func TestWeightedPickStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	weights := []float64{0.1, 0.2, 0.3, 0.4}
	for i := 0; i < 1000; i++ {
		idx := weightedPick(rng, weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("pick out of range: %d", idx)
		}
	}
}

func TestWeightedPickRespectsZeroWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	weights := []float64{0, 1, 0}
	for i := 0; i < 200; i++ {
		if idx := weightedPick(rng, weights); idx != 1 {
			t.Fatalf("zero-weight option was picked: %d", idx)
		}
	}
}

func TestOptionWeightsMatchOptionCount(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		n       int
		weekend bool
	}{
		{"mood_weekday", "Mood", 7, false},
		{"mood_weekend", "Mood", 7, true},
		{"sleep_weekday", "Sleep", 5, false},
		{"sleep_weekend", "Sleep", 5, true},
		{"custom", "Exercise", 4, false},
		{"mood_with_custom_options", "Mood", 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := optionWeights(tc.title, tc.n, tc.weekend)
			if len(got) != tc.n {
				t.Fatalf("expected %d weights, got %d", tc.n, len(got))
			}
			for i, w := range got {
				if w <= 0 {
					t.Fatalf("non-positive weight at %d: %v", i, w)
				}
			}
		})
	}
}
