// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"math"
	"sort"
)

// neighbor is a similar user with their similarity score.
type neighbor struct {
	UserID     int
	Similarity float64
}

// topSimilarUsers ranks every other user in the normalized matrix by cosine
// similarity against the target's row and returns the topN user IDs.
//
// The target is excluded by identity. A positional rank-0 drop would silently
// exclude the wrong user whenever another user's vector ties the self-match at
// similarity 1.0 and sorts first.
func topSimilarUsers(m *Matrix, userID, topN int) []int {
	target, ok := m.Row(userID)
	if !ok {
		return nil
	}

	neighbors := make([]neighbor, 0, len(m.users))
	for i, uid := range m.users {
		if uid == userID {
			continue
		}
		neighbors = append(neighbors, neighbor{
			UserID:     uid,
			Similarity: cosineSimilarity(target, m.rows[i]),
		})
	}

	// Descending similarity, ascending user ID on ties for determinism.
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Similarity != neighbors[j].Similarity {
			return neighbors[i].Similarity > neighbors[j].Similarity
		}
		return neighbors[i].UserID < neighbors[j].UserID
	})

	if len(neighbors) > topN {
		neighbors = neighbors[:topN]
	}

	out := make([]int, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.UserID
	}
	return out
}

// cosineSimilarity computes cosine similarity between two vectors.
// Zero-norm vectors yield 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
