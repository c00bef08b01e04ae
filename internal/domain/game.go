package domain

import (
	"errors"
	"strings"
)

// AgeRating is one entry of a game's rating-board classifications.
// Category identifies the board (ESRB, PEGI, ...), Rating the value on
// that board's scale; both are the numeric codes the server stores.
type AgeRating struct {
	Category int `json:"category"`
	Rating   int `json:"rating"`
}

// Severity collapses a rating into a single orderable scalar so entries
// from different boards can still be compared.
func (r AgeRating) Severity() int {
	return r.Category*1000 + r.Rating
}

// Executable is a launchable binary registered for a game.
type Executable struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Game struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary,omitempty"`
	Cover      string `json:"cover,omitempty"`
	Background string `json:"background,omitempty"`

	// release date parts, any of which may be absent
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`

	Stars        *float64 `json:"stars,omitempty"`
	CriticRating *float64 `json:"criticRating,omitempty"`
	UserRating   *float64 `json:"userRating,omitempty"`

	AgeRatings []AgeRating `json:"ageRatings,omitempty"`

	Genre              TagList `json:"genre,omitempty"`
	Themes             TagList `json:"themes,omitempty"`
	Platforms          TagList `json:"platforms,omitempty"`
	GameModes          TagList `json:"gameModes,omitempty"`
	PlayerPerspectives TagList `json:"playerPerspectives,omitempty"`
	GameEngines        TagList `json:"gameEngines,omitempty"`
	Developers         TagList `json:"developers,omitempty"`
	Publishers         TagList `json:"publishers,omitempty"`
	Franchise          TagList `json:"franchise,omitempty"`
	Series             TagList `json:"series,omitempty"`
	Keywords           TagList `json:"keywords,omitempty"`

	Executables []Executable `json:"executables,omitempty"`
}

func (g *Game) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("game id cannot be empty")
	}

	if strings.TrimSpace(g.Title) == "" {
		return errors.New("game title cannot be empty")
	}

	if g.Year != nil && (*g.Year < 1950 || *g.Year > 2100) {
		return errors.New("game year out of range")
	}

	if g.Month != nil && (*g.Month < 1 || *g.Month > 12) {
		return errors.New("game month out of range")
	}

	if g.Day != nil && (*g.Day < 1 || *g.Day > 31) {
		return errors.New("game day out of range")
	}

	return nil
}

// Decade returns the release decade (e.g. 1990 for 1998) and false when
// the game has no year at all.
func (g *Game) Decade() (int, bool) {
	if g.Year == nil {
		return 0, false
	}
	return (*g.Year / 10) * 10, true
}

// MaxRatingSeverity reduces the rating list to its strictest entry.
// Games with no ratings report ok=false and sort last regardless of
// direction.
func (g *Game) MaxRatingSeverity() (int, bool) {
	if len(g.AgeRatings) == 0 {
		return 0, false
	}
	max := g.AgeRatings[0].Severity()
	for _, r := range g.AgeRatings[1:] {
		if s := r.Severity(); s > max {
			max = s
		}
	}
	return max, true
}

// HasAgeRating reports whether the game carries the exact (category, rating)
// pair.
func (g *Game) HasAgeRating(category, rating int) bool {
	for _, r := range g.AgeRatings {
		if r.Category == category && r.Rating == rating {
			return true
		}
	}
	return false
}
