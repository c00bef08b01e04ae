package export

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"game-library/internal/domain"
)

type MarkdownExporter struct {
	source Source
}

func NewMarkdownExporter(source Source) *MarkdownExporter {
	return &MarkdownExporter{source: source}
}

func (e *MarkdownExporter) ExportLibraryToMarkdown(ctx context.Context, w io.Writer) error {
	games, err := e.source.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list games: %w", err)
	}

	fmt.Fprintln(w, "# Game Library")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d games\n\n", len(games))

	writeGamesByDecade(w, games)
	return nil
}

func (e *MarkdownExporter) ExportCollectionToMarkdown(ctx context.Context, w io.Writer, collectionID string) error {
	collections, err := e.source.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	var collection *domain.Collection
	for _, c := range collections {
		if c.ID == collectionID {
			collection = c
			break
		}
	}
	if collection == nil {
		return fmt.Errorf("collection %q not found", collectionID)
	}

	games, err := e.source.CollectionGames(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("failed to list collection games: %w", err)
	}

	fmt.Fprintf(w, "# %s\n\n", collection.Title)
	fmt.Fprintf(w, "%d games\n\n", len(games))

	writeGamesByDecade(w, games)
	return nil
}

func writeGamesByDecade(w io.Writer, games []*domain.Game) {
	byDecade := make(map[int][]*domain.Game)
	var undated []*domain.Game
	for _, game := range games {
		if decade, ok := game.Decade(); ok {
			byDecade[decade] = append(byDecade[decade], game)
		} else {
			undated = append(undated, game)
		}
	}

	decades := make([]int, 0, len(byDecade))
	for decade := range byDecade {
		decades = append(decades, decade)
	}
	sort.Ints(decades)

	for _, decade := range decades {
		fmt.Fprintf(w, "## %ds (%d)\n\n", decade, len(byDecade[decade]))
		for _, game := range byDecade[decade] {
			writeGame(w, game)
		}
		fmt.Fprintln(w)
	}

	if len(undated) > 0 {
		fmt.Fprintf(w, "## Undated (%d)\n\n", len(undated))
		for _, game := range undated {
			writeGame(w, game)
		}
		fmt.Fprintln(w)
	}
}

func writeGame(w io.Writer, game *domain.Game) {
	fmt.Fprintf(w, "- **%s**", game.Title)

	var details []string
	if game.Year != nil {
		details = append(details, fmt.Sprintf("%d", *game.Year))
	}
	if genres := game.Genre.Names(); len(genres) > 0 {
		details = append(details, strings.Join(genres, ", "))
	}
	if game.Stars != nil {
		details = append(details, fmt.Sprintf("%.1f stars", *game.Stars))
	}
	if len(details) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(details, " | "))
	}
	fmt.Fprintln(w)

	if game.Summary != "" {
		fmt.Fprintf(w, "  %s\n", game.Summary)
	}
}
