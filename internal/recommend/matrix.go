// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/reelrank/internal/ratings"
)

// Matrix is a dense user-by-movie rating grid derived from the store.
// Rows are users with at least one rating; columns are movies with at least
// one rating from any user, both ordered by ascending ID. Missing entries
// are zero.
type Matrix struct {
	users     []int
	movies    []int
	rows      [][]float64
	userIndex map[int]int
}

// BuildMatrix pivots the store's rows into a dense matrix. Duplicate
// (user, movie) pairs keep the latest appended value. An empty store yields
// an empty matrix.
func BuildMatrix(store *ratings.Store) *Matrix {
	// Later rows overwrite earlier ones for the same pair.
	cells := make(map[int]map[int]float64)
	movieSet := make(map[int]struct{})

	for _, r := range store.All() {
		if cells[r.UserID] == nil {
			cells[r.UserID] = make(map[int]float64)
		}
		cells[r.UserID][r.MovieID] = r.Rating
		movieSet[r.MovieID] = struct{}{}
	}

	m := &Matrix{
		users:     make([]int, 0, len(cells)),
		movies:    make([]int, 0, len(movieSet)),
		userIndex: make(map[int]int, len(cells)),
	}
	for uid := range cells {
		m.users = append(m.users, uid)
	}
	for mid := range movieSet {
		m.movies = append(m.movies, mid)
	}
	sort.Ints(m.users)
	sort.Ints(m.movies)

	colIndex := make(map[int]int, len(m.movies))
	for j, mid := range m.movies {
		colIndex[mid] = j
	}

	m.rows = make([][]float64, len(m.users))
	for i, uid := range m.users {
		m.userIndex[uid] = i
		row := make([]float64, len(m.movies))
		for mid, v := range cells[uid] {
			row[colIndex[mid]] = v
		}
		m.rows[i] = row
	}

	return m
}

// IsEmpty reports whether the matrix has no rows.
func (m *Matrix) IsEmpty() bool {
	return len(m.rows) == 0
}

// Users returns the user IDs in row order. The returned slice is a copy.
func (m *Matrix) Users() []int {
	out := make([]int, len(m.users))
	copy(out, m.users)
	return out
}

// Movies returns the movie IDs in column order. The returned slice is a copy.
func (m *Matrix) Movies() []int {
	out := make([]int, len(m.movies))
	copy(out, m.movies)
	return out
}

// Row returns the row vector for a user.
func (m *Matrix) Row(userID int) ([]float64, bool) {
	i, ok := m.userIndex[userID]
	if !ok {
		return nil, false
	}
	return m.rows[i], true
}

// Normalize applies a per-column z-score in place: subtract the column mean
// and divide by the population standard deviation. A zero-variance column
// normalizes to zero for every row rather than propagating NaN.
func (m *Matrix) Normalize() {
	if m.IsEmpty() {
		return
	}

	n := float64(len(m.rows))
	for j := range m.movies {
		var sum float64
		for i := range m.rows {
			sum += m.rows[i][j]
		}
		mean := sum / n

		var variance float64
		for i := range m.rows {
			d := m.rows[i][j] - mean
			variance += d * d
		}
		std := math.Sqrt(variance / n)

		if std == 0 {
			for i := range m.rows {
				m.rows[i][j] = 0
			}
			continue
		}
		for i := range m.rows {
			m.rows[i][j] = (m.rows[i][j] - mean) / std
		}
	}
}
