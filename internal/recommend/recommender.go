// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelrank/internal/catalog"
	"github.com/tomtom215/reelrank/internal/ratings"
)

// Engine produces user-based collaborative-filtering recommendations.
// It reads the catalog and store on every request and never mutates either.
type Engine struct {
	config  Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	store   *ratings.Store
}

// NewEngine creates a recommendation engine over the given catalog and store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, store *ratings.Store, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommender").Logger(),
		catalog: cat,
		store:   store,
	}, nil
}

// SimilarUsers returns the IDs of the users most similar to the target,
// best first. It returns nil when fewer than MinRatings rows exist
// system-wide, when the matrix is empty, or when the target has no row.
func (e *Engine) SimilarUsers(userID int) []int {
	if e.store.Len() < e.config.MinRatings {
		e.logger.Debug().
			Int("user_id", userID).
			Int("ratings", e.store.Len()).
			Int("min_ratings", e.config.MinRatings).
			Msg("not enough ratings for similarity search")
		return nil
	}

	m := BuildMatrix(e.store)
	if m.IsEmpty() {
		return nil
	}
	m.Normalize()

	return topSimilarUsers(m, userID, e.config.TopNeighbors)
}

// Recommend generates up to NumRecommendations movies for the user.
//
// Candidates are the similar users' movies rated at or above LikeThreshold
// that the target has not rated, counted with multiplicity across neighbors.
// With no neighbor evidence the unseen catalog movies are the fallback. A
// user with no stored ratings gets an empty result. Returned movies are
// ordered by occurrence count descending, movie ID ascending on ties.
func (e *Engine) Recommend(userID int) []catalog.Movie {
	logger := e.logger.With().
		Str("request_id", uuid.NewString()).
		Int("user_id", userID).
		Logger()

	rated := e.store.UserMovies(userID)
	if len(rated) == 0 {
		logger.Debug().Msg("user has no ratings, nothing to recommend")
		return nil
	}

	neighbors := e.SimilarUsers(userID)

	// Neighbor rows come from the raw matrix so threshold checks see actual
	// ratings, with the same keep-latest duplicate policy as the pivot.
	m := BuildMatrix(e.store)
	movieIDs := m.Movies()

	counts := make(map[int]int)
	for _, nid := range neighbors {
		row, ok := m.Row(nid)
		if !ok {
			continue
		}
		for j, mid := range movieIDs {
			if row[j] < e.config.LikeThreshold {
				continue
			}
			if _, seen := rated[mid]; seen {
				continue
			}
			counts[mid]++
		}
	}

	fallback := false
	if len(counts) == 0 {
		for _, mid := range e.catalog.UnseenBy(rated) {
			counts[mid] = 1
		}
		fallback = true
	}

	if len(counts) == 0 {
		logger.Debug().Int("neighbors", len(neighbors)).Msg("no candidates")
		return nil
	}

	ranked := rankCandidates(counts)
	if len(ranked) > e.config.NumRecommendations {
		ranked = ranked[:e.config.NumRecommendations]
	}

	// A candidate outside the catalog (possible via ad-hoc rating entry)
	// consumes a slot but resolves to nothing.
	out := make([]catalog.Movie, 0, len(ranked))
	for _, mid := range ranked {
		if movie, ok := e.catalog.Get(mid); ok {
			out = append(out, movie)
		}
	}

	logger.Debug().
		Int("neighbors", len(neighbors)).
		Int("candidates", len(counts)).
		Bool("fallback", fallback).
		Int("returned", len(out)).
		Msg("recommendation complete")

	return out
}

// rankCandidates orders candidate movie IDs by occurrence count descending,
// movie ID ascending on ties.
func rankCandidates(counts map[int]int) []int {
	ids := make([]int, 0, len(counts))
	for mid := range counts {
		ids = append(ids, mid)
	}

	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	return ids
}
