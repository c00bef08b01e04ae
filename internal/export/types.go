package export

import (
	"context"
	"time"

	"game-library/internal/display"
	"game-library/internal/domain"
)

// Source supplies the library contents being exported. The API client
// satisfies it.
type Source interface {
	ListGames(ctx context.Context) ([]*domain.Game, error)
	ListCollections(ctx context.Context) ([]*domain.Collection, error)
	CollectionGames(ctx context.Context, collectionID string) ([]*domain.Game, error)
}

type LibraryExport struct {
	Version     string              `json:"version"`
	Timestamp   time.Time           `json:"timestamp"`
	Games       []*GameRecord       `json:"games"`
	Collections []*CollectionRecord `json:"collections,omitempty"`
}

type CollectionExport struct {
	Version    string            `json:"version"`
	Timestamp  time.Time         `json:"timestamp"`
	Collection *CollectionRecord `json:"collection"`
	Games      []*GameRecord     `json:"games"`
}

type GameRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary,omitempty"`
	Year         *int     `json:"year,omitempty"`
	ReleaseDate  string   `json:"release_date,omitempty"`
	Stars        *float64 `json:"stars,omitempty"`
	CriticRating *float64 `json:"critic_rating,omitempty"`
	UserRating   *float64 `json:"user_rating,omitempty"`
	AgeRating    string   `json:"age_rating,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	Themes       []string `json:"themes,omitempty"`
	Platforms    []string `json:"platforms,omitempty"`
	GameModes    []string `json:"game_modes,omitempty"`
	Developers   []string `json:"developers,omitempty"`
	Publishers   []string `json:"publishers,omitempty"`
	Franchises   []string `json:"franchises,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

type CollectionRecord struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	GameIDs   []string `json:"game_ids,omitempty"`
	GameCount int      `json:"game_count"`
}

const exportVersion = "1.0"

func convertGame(g *domain.Game) *GameRecord {
	release := ""
	if g.Year != nil {
		release = display.FormatReleaseDate(g)
	}
	age := ""
	if len(g.AgeRatings) > 0 {
		age = display.FormatAgeRating(g)
	}
	return &GameRecord{
		ID:           g.ID,
		Title:        g.Title,
		Summary:      g.Summary,
		Year:         g.Year,
		ReleaseDate:  release,
		Stars:        g.Stars,
		CriticRating: g.CriticRating,
		UserRating:   g.UserRating,
		AgeRating:    age,
		Genres:       g.Genre.Names(),
		Themes:       g.Themes.Names(),
		Platforms:    g.Platforms.Names(),
		GameModes:    g.GameModes.Names(),
		Developers:   g.Developers.Names(),
		Publishers:   g.Publishers.Names(),
		Franchises:   g.Franchise.Names(),
		Keywords:     g.Keywords.Names(),
	}
}

func convertCollection(c *domain.Collection) *CollectionRecord {
	return &CollectionRecord{
		ID:        c.ID,
		Title:     c.Title,
		GameIDs:   c.GameIDs,
		GameCount: c.GameCount,
	}
}
