// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelrank/internal/catalog"
	"github.com/tomtom215/reelrank/internal/ratings"
)

func newTestEngine(t *testing.T, rows []ratings.Rating) *Engine {
	t.Helper()

	eng, err := NewEngine(catalog.Seed(), newTestStore(t, rows), DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return eng
}

// rate expands per-user rating maps into store rows.
func rate(userID int, byMovie map[int]float64) []ratings.Rating {
	var rows []ratings.Rating
	for mid := 1; mid <= 5; mid++ {
		if v, ok := byMovie[mid]; ok {
			rows = append(rows, ratings.Rating{UserID: userID, MovieID: mid, Rating: v})
		}
	}
	return rows
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopNeighbors = 0

	if _, err := NewEngine(catalog.Seed(), ratings.NewStore(), cfg, zerolog.Nop()); err == nil {
		t.Error("NewEngine() accepted invalid config")
	}
}

func TestSimilarUsersMinRatingsGate(t *testing.T) {
	// Four rows system-wide, one below the gate.
	rows := append(
		rate(1, map[int]float64{1: 5, 2: 5}),
		rate(2, map[int]float64{1: 5, 2: 4})...,
	)
	eng := newTestEngine(t, rows)

	for _, uid := range []int{1, 2, 99} {
		if got := eng.SimilarUsers(uid); got != nil {
			t.Errorf("SimilarUsers(%d) = %v below the gate, want nil", uid, got)
		}
	}
}

func TestSimilarUsersUnknownUser(t *testing.T) {
	rows := append(
		rate(1, map[int]float64{1: 5, 2: 5, 3: 1}),
		rate(2, map[int]float64{1: 5, 2: 4, 3: 2})...,
	)
	eng := newTestEngine(t, rows)

	if got := eng.SimilarUsers(99); got != nil {
		t.Errorf("SimilarUsers(99) = %v, want nil for absent user", got)
	}
}

func TestRecommendNewUserEmpty(t *testing.T) {
	// Plenty of data from others, none from the target.
	rows := append(
		rate(2, map[int]float64{1: 5, 2: 5, 3: 5}),
		rate(3, map[int]float64{1: 4, 2: 4, 3: 4})...,
	)
	eng := newTestEngine(t, rows)

	if got := eng.Recommend(1); len(got) != 0 {
		t.Errorf("Recommend(new user) = %v, want empty", got)
	}
}

func TestRecommendFromNeighborEvidence(t *testing.T) {
	rows := append(rate(1, map[int]float64{1: 5, 2: 5}),
		append(rate(2, map[int]float64{1: 5, 2: 5, 3: 5}),
			rate(3, map[int]float64{1: 5, 2: 4, 4: 4})...)...)
	eng := newTestEngine(t, rows)

	got := eng.Recommend(1)
	if len(got) != 2 {
		t.Fatalf("Recommend() returned %d movies, want 2: %v", len(got), got)
	}
	if got[0].ID != 3 || got[1].ID != 4 {
		t.Errorf("Recommend() IDs = [%d %d], want [3 4]", got[0].ID, got[1].ID)
	}
	if got[0].Title != "Interstellar" {
		t.Errorf("Title = %q, want Interstellar", got[0].Title)
	}
}

func TestRecommendNeverIncludesRatedMovies(t *testing.T) {
	rows := append(rate(1, map[int]float64{1: 5, 2: 5, 3: 1}),
		append(rate(2, map[int]float64{1: 5, 2: 5, 3: 5, 4: 5}),
			rate(3, map[int]float64{1: 4, 2: 4, 5: 5})...)...)
	eng := newTestEngine(t, rows)

	rated := map[int]bool{1: true, 2: true, 3: true}
	for _, m := range eng.Recommend(1) {
		if rated[m.ID] {
			t.Errorf("Recommend() returned already-rated movie %d", m.ID)
		}
	}
}

func TestRecommendRankingMonotonicInCount(t *testing.T) {
	// Movie 3 is endorsed by two neighbors, movie 4 by one.
	rows := append(rate(1, map[int]float64{1: 5}),
		append(rate(2, map[int]float64{1: 5, 3: 5}),
			rate(3, map[int]float64{1: 5, 3: 4, 4: 5})...)...)
	eng := newTestEngine(t, rows)

	got := eng.Recommend(1)
	if len(got) < 2 {
		t.Fatalf("Recommend() = %v, want at least 2 movies", got)
	}
	if got[0].ID != 3 {
		t.Errorf("top recommendation = %d, want twice-endorsed movie 3", got[0].ID)
	}
	if got[1].ID != 4 {
		t.Errorf("second recommendation = %d, want once-endorsed movie 4", got[1].ID)
	}
}

func TestRecommendFallbackToUnseenCatalog(t *testing.T) {
	// Below the similarity gate: no neighbors, so candidates must be exactly
	// the unseen catalog movies.
	eng := newTestEngine(t, rate(1, map[int]float64{1: 5, 2: 3}))

	got := eng.Recommend(1)
	if len(got) != 3 {
		t.Fatalf("Recommend() returned %d movies, want 3: %v", len(got), got)
	}
	want := []int{3, 4, 5}
	for i, m := range got {
		if m.ID != want[i] {
			t.Errorf("Recommend()[%d].ID = %d, want %d", i, m.ID, want[i])
		}
	}
}

func TestRecommendTruncatesToConfiguredCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumRecommendations = 2

	store := newTestStore(t, rate(1, map[int]float64{1: 5}))
	eng, err := NewEngine(catalog.Seed(), store, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	// Fallback path offers four unseen movies; only two may return.
	if got := eng.Recommend(1); len(got) != 2 {
		t.Errorf("Recommend() returned %d movies, want 2", len(got))
	}
}

func TestRecommendEndToEndScenario(t *testing.T) {
	// The five-user seed scenario: user 1 has rated the whole catalog, so no
	// candidate can survive the already-rated filter and the result is empty
	// despite strong neighbors.
	rows := append(rate(1, map[int]float64{1: 5, 2: 5, 3: 1, 4: 1, 5: 1}),
		append(rate(2, map[int]float64{1: 5, 2: 4, 3: 2, 4: 1, 5: 1}),
			append(rate(3, map[int]float64{1: 1, 2: 1, 3: 5, 4: 5, 5: 1}),
				append(rate(4, map[int]float64{1: 1, 2: 1, 3: 4, 4: 1, 5: 5}),
					rate(5, map[int]float64{1: 4, 2: 5, 3: 1, 4: 2, 5: 1})...)...)...)...)
	eng := newTestEngine(t, rows)

	neighbors := eng.SimilarUsers(1)
	if len(neighbors) != 3 {
		t.Fatalf("SimilarUsers(1) = %v, want 3 neighbors", neighbors)
	}
	closest := map[int]bool{neighbors[0]: true, neighbors[1]: true}
	if !closest[2] || !closest[5] {
		t.Errorf("closest neighbors = %v, want users 2 and 5 first", neighbors[:2])
	}

	if got := eng.Recommend(1); len(got) != 0 {
		t.Errorf("Recommend(1) = %v, want empty (user rated the full catalog)", got)
	}
}

func TestRankCandidates(t *testing.T) {
	tests := []struct {
		name   string
		counts map[int]int
		want   []int
	}{
		{"empty", map[int]int{}, []int{}},
		{"by count", map[int]int{4: 1, 2: 3, 7: 2}, []int{2, 7, 4}},
		{"ties by id", map[int]int{5: 1, 3: 1, 9: 1}, []int{3, 5, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rankCandidates(tt.counts)
			if len(got) != len(tt.want) {
				t.Fatalf("rankCandidates() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rankCandidates()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}
