// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import "fmt"

// Config contains all configuration for the recommendation engine.
type Config struct {
	// TopNeighbors is the number of similar users consulted for candidates.
	TopNeighbors int `json:"top_neighbors"`

	// NumRecommendations is the maximum number of movies returned per request.
	NumRecommendations int `json:"num_recommendations"`

	// LikeThreshold is the minimum neighbor rating that counts a movie as an
	// endorsement.
	LikeThreshold float64 `json:"like_threshold"`

	// MinRatings is the minimum number of stored rating rows system-wide
	// before similarity search returns any neighbors.
	MinRatings int `json:"min_ratings"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		TopNeighbors:       3,
		NumRecommendations: 3,
		LikeThreshold:      4.0,
		MinRatings:         5,
	}
}

// Validate checks configuration bounds.
func (c Config) Validate() error {
	if c.TopNeighbors <= 0 {
		return fmt.Errorf("top_neighbors must be positive, got %d", c.TopNeighbors)
	}
	if c.NumRecommendations <= 0 {
		return fmt.Errorf("num_recommendations must be positive, got %d", c.NumRecommendations)
	}
	if c.LikeThreshold <= 0 || c.LikeThreshold > 5 {
		return fmt.Errorf("like_threshold must be in (0, 5], got %g", c.LikeThreshold)
	}
	if c.MinRatings < 0 {
		return fmt.Errorf("min_ratings must not be negative, got %d", c.MinRatings)
	}
	return nil
}
