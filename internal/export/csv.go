package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"game-library/internal/domain"
)

type CSVExporter struct {
	source Source
}

func NewCSVExporter(source Source) *CSVExporter {
	return &CSVExporter{source: source}
}

func (e *CSVExporter) ExportLibraryToCSV(ctx context.Context, w io.Writer) error {
	games, err := e.source.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list games: %w", err)
	}

	return writeGamesCSV(w, games)
}

func (e *CSVExporter) ExportCollectionToCSV(ctx context.Context, w io.Writer, collectionID string) error {
	games, err := e.source.CollectionGames(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("failed to list collection games: %w", err)
	}

	return writeGamesCSV(w, games)
}

func writeGamesCSV(w io.Writer, games []*domain.Game) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"ID", "Title", "Year", "Release Date", "Stars", "Critic Rating", "User Rating", "Age Rating", "Genres", "Platforms", "Developers", "Publishers"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, game := range games {
		record := convertGame(game)
		row := []string{
			record.ID,
			record.Title,
			"",
			record.ReleaseDate,
			formatFloat(record.Stars),
			formatFloat(record.CriticRating),
			formatFloat(record.UserRating),
			record.AgeRating,
			strings.Join(record.Genres, ";"),
			strings.Join(record.Platforms, ";"),
			strings.Join(record.Developers, ";"),
			strings.Join(record.Publishers, ";"),
		}

		if record.Year != nil {
			row[2] = strconv.Itoa(*record.Year)
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
