// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package recommend implements user-based collaborative filtering over the
// session rating store.
//
// # Pipeline
//
// Each request recomputes the full pipeline from the store; there is no
// incremental update and no caching:
//
//  1. Pivot the rating rows into a dense user-by-movie matrix, missing
//     entries zero-filled, duplicate (user, movie) pairs keeping the latest
//     appended value.
//  2. Z-score each movie column across users. Columns with zero variance
//     normalize to zero for every row.
//  3. Rank other users by cosine similarity against the target's normalized
//     row and keep the top neighbors. The target is excluded by identity,
//     never by sort position.
//  4. Accumulate the neighbors' highly-rated movies the target has not seen,
//     counting multiplicity; fall back to unseen catalog movies when no
//     neighbor evidence exists.
//
// # Determinism
//
// Same store contents produce identical output: matrix rows and columns are
// ordered by ascending ID, and similarity and candidate ranking break ties by
// ascending ID.
//
// # Usage
//
//	engine, err := recommend.NewEngine(catalog.Seed(), store, recommend.DefaultConfig(), logger)
//	if err != nil {
//		return err
//	}
//	movies := engine.Recommend(userID)
package recommend
