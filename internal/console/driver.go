// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package console implements the interactive rating and recommendation loop.
//
// Error handling has two tiers. Rating collection validates each answer in a
// dedicated loop and re-prompts until the input parses and is in range. Every
// other failure inside a session (a non-numeric user ID, a bad ad-hoc rating
// entry) aborts that session: the error is printed, logged, and the outer
// loop restarts from the user-ID prompt. Only the user declining to continue,
// or end of input, ends the process.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelrank/internal/catalog"
	"github.com/tomtom215/reelrank/internal/ratings"
	"github.com/tomtom215/reelrank/internal/recommend"
)

// Config holds driver configuration.
type Config struct {
	// Input is the interactive input stream. Default: caller supplies os.Stdin.
	Input io.Reader

	// Output is where prompts and results are written.
	Output io.Writer

	// OutputFormat selects recommendation rendering: table or json.
	OutputFormat string
}

// Driver runs the interactive session loop.
type Driver struct {
	in      *bufio.Scanner
	out     io.Writer
	format  string
	logger  zerolog.Logger
	catalog *catalog.Catalog
	store   *ratings.Store
	engine  *recommend.Engine
}

// New creates a console driver over the given catalog, store, and engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cat *catalog.Catalog, store *ratings.Store, engine *recommend.Engine, cfg Config, logger zerolog.Logger) *Driver {
	format := cfg.OutputFormat
	if format == "" {
		format = "table"
	}

	return &Driver{
		in:      bufio.NewScanner(cfg.Input),
		out:     cfg.Output,
		format:  format,
		logger:  logger.With().Str("component", "console").Logger(),
		catalog: cat,
		store:   store,
		engine:  engine,
	}
}

// Run executes the outer session loop until the user declines to continue or
// input ends. Session-level errors are printed and logged, never fatal.
func (d *Driver) Run() error {
	for {
		logger := d.logger.With().Str("session_id", uuid.NewString()).Logger()

		again, err := d.session(logger)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(d.out, "An error occurred: %v\n", err)
			logger.Error().Err(err).Msg("session aborted, restarting")
			continue
		}
		if !again {
			break
		}
	}

	fmt.Fprintln(d.out, "Thank you for using the movie recommender!")
	return nil
}

// session runs one outer-loop iteration. It reports whether the user chose to
// continue. Any returned error other than io.EOF restarts the loop.
func (d *Driver) session(logger zerolog.Logger) (bool, error) {
	raw, err := d.prompt("Enter your user ID (1-5): ")
	if err != nil {
		return false, err
	}
	userID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid user ID %q", strings.TrimSpace(raw))
	}

	logger = logger.With().Int("user_id", userID).Logger()
	logger.Info().Msg("session started")

	if err := d.collectInitialRatings(userID, logger); err != nil {
		return false, err
	}

	movies := d.engine.Recommend(userID)
	if len(movies) == 0 {
		fmt.Fprintln(d.out, "\nNot enough data to generate recommendations. Please rate more movies.")
	} else {
		if err := d.renderRecommendations(movies); err != nil {
			return false, err
		}
	}

	if err := d.rateAnotherMovie(userID, logger); err != nil {
		return false, err
	}

	answer, err := d.prompt("\nContinue? (yes/no): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

// collectInitialRatings walks the catalog and prompts for a rating of each
// movie, re-prompting until the answer is an integer in [0, 5]. Zero means
// unseen and stores nothing.
func (d *Driver) collectInitialRatings(userID int, logger zerolog.Logger) error {
	fmt.Fprintln(d.out, "\nPlease rate the following movies (1-5):")

	stored := 0
	for _, movie := range d.catalog.Movies() {
		value, err := d.promptRating(movie)
		if err != nil {
			return err
		}
		if value == 0 {
			continue
		}
		if err := d.store.Add(ratings.Rating{UserID: userID, MovieID: movie.ID, Rating: float64(value)}); err != nil {
			return err
		}
		stored++
	}

	logger.Debug().Int("stored", stored).Msg("initial ratings collected")
	return nil
}

// promptRating asks for one movie rating until the input is valid.
func (d *Driver) promptRating(movie catalog.Movie) (int, error) {
	for {
		raw, err := d.prompt(fmt.Sprintf("Rate '%s' (1-5, or 0 if you haven't seen it): ", movie.Title))
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fmt.Fprintln(d.out, "Please enter a valid number.")
			continue
		}
		if value < 0 || value > 5 {
			fmt.Fprintln(d.out, "Please enter a rating between 0 and 5.")
			continue
		}
		return value, nil
	}
}

// rateAnotherMovie offers one ad-hoc rating entry. This path parses numbers
// without a validation loop; failures abort the session like any other error.
func (d *Driver) rateAnotherMovie(userID int, logger zerolog.Logger) error {
	answer, err := d.prompt("\nWould you like to rate another movie? (yes/no): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
		return nil
	}

	raw, err := d.prompt("Enter movie ID to rate: ")
	if err != nil {
		return err
	}
	movieID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid movie ID %q", strings.TrimSpace(raw))
	}

	raw, err = d.prompt("Enter your rating (1-5): ")
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid rating %q", strings.TrimSpace(raw))
	}

	if err := d.store.Add(ratings.Rating{UserID: userID, MovieID: movieID, Rating: value}); err != nil {
		return err
	}

	logger.Debug().Int("movie_id", movieID).Float64("rating", value).Msg("ad-hoc rating stored")
	return nil
}

// renderRecommendations prints the result list in the configured format.
func (d *Driver) renderRecommendations(movies []catalog.Movie) error {
	fmt.Fprintln(d.out, "\nRecommended Movies:")

	if d.format == "json" {
		data, err := json.MarshalIndent(movies, "", "  ")
		if err != nil {
			return fmt.Errorf("encode recommendations: %w", err)
		}
		fmt.Fprintln(d.out, string(data))
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	for _, m := range movies {
		fmt.Fprintf(w, "%s\t%s\n", m.Title, m.GenreString())
	}
	return w.Flush()
}

// prompt writes the prompt text and reads one line of input.
// End of input is reported as io.EOF.
func (d *Driver) prompt(text string) (string, error) {
	fmt.Fprint(d.out, text)

	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return d.in.Text(), nil
}
