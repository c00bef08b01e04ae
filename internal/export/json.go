package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

type JSONExporter struct {
	source Source
}

func NewJSONExporter(source Source) *JSONExporter {
	return &JSONExporter{source: source}
}

func (e *JSONExporter) ExportLibrary(ctx context.Context) (*LibraryExport, error) {
	games, err := e.source.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	collections, err := e.source.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	out := &LibraryExport{
		Version:   exportVersion,
		Timestamp: time.Now().UTC(),
		Games:     make([]*GameRecord, 0, len(games)),
	}
	for _, g := range games {
		out.Games = append(out.Games, convertGame(g))
	}
	for _, c := range collections {
		out.Collections = append(out.Collections, convertCollection(c))
	}

	return out, nil
}

func (e *JSONExporter) ExportLibraryToWriter(ctx context.Context, w io.Writer) error {
	export, err := e.ExportLibrary(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

func (e *JSONExporter) ExportCollection(ctx context.Context, collectionID string) (*CollectionExport, error) {
	collections, err := e.source.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	var record *CollectionRecord
	for _, c := range collections {
		if c.ID == collectionID {
			record = convertCollection(c)
			break
		}
	}
	if record == nil {
		return nil, fmt.Errorf("collection %q not found", collectionID)
	}

	games, err := e.source.CollectionGames(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection games: %w", err)
	}

	out := &CollectionExport{
		Version:    exportVersion,
		Timestamp:  time.Now().UTC(),
		Collection: record,
		Games:      make([]*GameRecord, 0, len(games)),
	}
	for _, g := range games {
		out.Games = append(out.Games, convertGame(g))
	}

	return out, nil
}

func (e *JSONExporter) ExportCollectionToWriter(ctx context.Context, w io.Writer, collectionID string) error {
	export, err := e.ExportCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}
