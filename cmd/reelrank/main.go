// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package main is the entry point for the Reelrank interactive recommender.
//
// Reelrank collects movie ratings on the console and suggests movies through
// user-based collaborative filtering over everything rated so far in the
// session. Nothing is persisted; state dies with the process.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority
// wins): environment variables, an optional reelrank.yaml file, and built-in
// defaults. All knobs default to the classic behavior, so no configuration is
// required.
//
//	LOG_LEVEL=debug ./reelrank
//	CONSOLE_OUTPUT_FORMAT=json RECOMMEND_TOP_NEIGHBORS=5 ./reelrank
//
// Prompts and results are written to stdout; structured logs go to stderr so
// the two streams never interleave.
package main

import (
	"os"

	"github.com/tomtom215/reelrank/internal/catalog"
	"github.com/tomtom215/reelrank/internal/config"
	"github.com/tomtom215/reelrank/internal/console"
	"github.com/tomtom215/reelrank/internal/logging"
	"github.com/tomtom215/reelrank/internal/ratings"
	"github.com/tomtom215/reelrank/internal/recommend"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger := logging.Logger()

	cat := catalog.Seed()
	store := ratings.NewStore()

	engine, err := recommend.NewEngine(cat, store, recommend.Config{
		TopNeighbors:       cfg.Recommend.TopNeighbors,
		NumRecommendations: cfg.Recommend.NumRecommendations,
		LikeThreshold:      cfg.Recommend.LikeThreshold,
		MinRatings:         cfg.Recommend.MinRatings,
	}, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	logger.Info().
		Int("catalog_size", cat.Len()).
		Int("top_neighbors", cfg.Recommend.TopNeighbors).
		Int("num_recommendations", cfg.Recommend.NumRecommendations).
		Msg("starting interactive session")

	driver := console.New(cat, store, engine, console.Config{
		Input:        os.Stdin,
		Output:       os.Stdout,
		OutputFormat: cfg.Console.OutputFormat,
	}, logger)

	if err := driver.Run(); err != nil {
		logging.Fatal().Err(err).Msg("Interactive session failed")
	}

	logger.Info().Int("ratings_collected", store.Len()).Msg("session ended")
}
