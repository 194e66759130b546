// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package config loads Reelrank configuration via Koanf v2 with layered
// sources: built-in defaults, an optional YAML config file, and environment
// variables (highest priority). Every knob has a default that reproduces the
// interactive behavior out of the box, so running with no config at all is
// fully supported.
package config

import (
	"fmt"
)

// Config is the root configuration for the application.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Console   ConsoleConfig   `koanf:"console"`
}

// LoggingConfig controls the structured log output on stderr.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the log output format: json or console.
	Format string `koanf:"format"`
}

// RecommendConfig tunes the collaborative-filtering pipeline.
type RecommendConfig struct {
	// TopNeighbors is how many similar users feed candidate generation.
	TopNeighbors int `koanf:"top_neighbors"`

	// NumRecommendations is how many movies a request returns at most.
	NumRecommendations int `koanf:"num_recommendations"`

	// LikeThreshold is the minimum neighbor rating that counts as an
	// endorsement of a movie.
	LikeThreshold float64 `koanf:"like_threshold"`

	// MinRatings is the minimum number of stored ratings system-wide before
	// similarity search produces any neighbors.
	MinRatings int `koanf:"min_ratings"`
}

// ConsoleConfig controls the interactive driver.
type ConsoleConfig struct {
	// OutputFormat selects how recommendations are rendered: table or json.
	OutputFormat string `koanf:"output_format"`
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validOutputFormats = map[string]bool{
	"table": true,
	"json":  true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateConsole()
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.TopNeighbors <= 0 {
		return fmt.Errorf("RECOMMEND_TOP_NEIGHBORS must be positive, got %d", c.Recommend.TopNeighbors)
	}
	if c.Recommend.NumRecommendations <= 0 {
		return fmt.Errorf("RECOMMEND_NUM_RECOMMENDATIONS must be positive, got %d", c.Recommend.NumRecommendations)
	}
	if c.Recommend.LikeThreshold <= 0 || c.Recommend.LikeThreshold > 5 {
		return fmt.Errorf("RECOMMEND_LIKE_THRESHOLD must be in (0, 5], got %g", c.Recommend.LikeThreshold)
	}
	if c.Recommend.MinRatings < 0 {
		return fmt.Errorf("RECOMMEND_MIN_RATINGS must not be negative, got %d", c.Recommend.MinRatings)
	}
	return nil
}

func (c *Config) validateConsole() error {
	if !validOutputFormats[c.Console.OutputFormat] {
		return fmt.Errorf("CONSOLE_OUTPUT_FORMAT must be one of: table, json")
	}
	return nil
}
