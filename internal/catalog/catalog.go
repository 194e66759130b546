// Reelrank - Interactive Movie Rating and Recommendation CLI
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package catalog holds the fixed set of recommendable movies.
//
// The catalog is immutable for the process lifetime: it is built once at
// startup and only read afterwards, so it is safe for concurrent use.
package catalog

import "strings"

// GenreSeparator joins genre tokens when a movie is rendered as a single line.
const GenreSeparator = "|"

// Movie is a recommendable item.
type Movie struct {
	// ID is the unique movie identifier, stable for the process lifetime.
	ID int `json:"movie_id"`

	// Title is the display title.
	Title string `json:"title"`

	// Genres is the ordered list of genre tokens.
	Genres []string `json:"genres"`
}

// GenreString returns the genres joined with GenreSeparator, e.g. "Action|Sci-Fi".
func (m Movie) GenreString() string {
	return strings.Join(m.Genres, GenreSeparator)
}

// Catalog is an immutable collection of movies with ID lookup.
type Catalog struct {
	movies []Movie
	byID   map[int]Movie
}

// New builds a catalog from the given movies. Later duplicates of an ID are
// ignored; the first occurrence wins.
func New(movies []Movie) *Catalog {
	c := &Catalog{
		movies: make([]Movie, 0, len(movies)),
		byID:   make(map[int]Movie, len(movies)),
	}
	for _, m := range movies {
		if _, ok := c.byID[m.ID]; ok {
			continue
		}
		c.byID[m.ID] = m
		c.movies = append(c.movies, m)
	}
	return c
}

// Seed returns the built-in five-movie catalog.
func Seed() *Catalog {
	return New([]Movie{
		{ID: 1, Title: "Inception", Genres: []string{"Action", "Sci-Fi"}},
		{ID: 2, Title: "The Matrix", Genres: []string{"Sci-Fi", "Action"}},
		{ID: 3, Title: "Interstellar", Genres: []string{"Sci-Fi", "Drama"}},
		{ID: 4, Title: "Dark Knight", Genres: []string{"Action", "Drama"}},
		{ID: 5, Title: "Pulp Fiction", Genres: []string{"Crime", "Drama"}},
	})
}

// Movies returns the movies in catalog order. The returned slice is a copy.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Get returns the movie with the given ID.
func (c *Catalog) Get(id int) (Movie, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Len returns the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// UnseenBy returns the IDs of catalog movies absent from the rated set,
// in catalog order.
func (c *Catalog) UnseenBy(rated map[int]struct{}) []int {
	var unseen []int
	for _, m := range c.movies {
		if _, ok := rated[m.ID]; !ok {
			unseen = append(unseen, m.ID)
		}
	}
	return unseen
}
