// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package ratings accumulates user-movie rating observations for the lifetime
// of one interactive session.
//
// The store is an explicit value handed to each pipeline stage rather than
// package-level state, so the pipeline stays testable in isolation. It is
// append-only: re-rating a (user, movie) pair appends a new row, and matrix
// construction keeps the latest value for the pair. Nothing is persisted;
// state dies with the process.
package ratings

import "fmt"

// Rating is one observed (user, movie, score) triple.
type Rating struct {
	UserID  int     `json:"user_id"`
	MovieID int     `json:"movie_id"`
	Rating  float64 `json:"rating"`
}

// Store is the append-only rating collection for a session.
// It is not safe for concurrent use; the interactive session is single-threaded.
type Store struct {
	rows []Rating
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a rating. Values outside (0, 5] are rejected: zero means
// "unseen" and is filtered before storage.
func (s *Store) Add(r Rating) error {
	if r.Rating <= 0 || r.Rating > 5 {
		return fmt.Errorf("rating %g for movie %d is outside (0, 5]", r.Rating, r.MovieID)
	}
	s.rows = append(s.rows, r)
	return nil
}

// Len returns the total number of stored rating rows, duplicates included.
func (s *Store) Len() int {
	return len(s.rows)
}

// All returns the stored rows in insertion order. The returned slice is a copy.
func (s *Store) All() []Rating {
	out := make([]Rating, len(s.rows))
	copy(out, s.rows)
	return out
}

// UserMovies returns the set of movie IDs the user has rated.
func (s *Store) UserMovies(userID int) map[int]struct{} {
	seen := make(map[int]struct{})
	for _, r := range s.rows {
		if r.UserID == userID {
			seen[r.MovieID] = struct{}{}
		}
	}
	return seen
}
