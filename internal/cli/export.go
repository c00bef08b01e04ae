package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"game-library/internal/export"
)

var (
	exportFormat     string
	exportOutput     string
	exportCollection string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library or a collection",
	Long: `Export games to JSON, CSV or Markdown.

Without --output the export is written to stdout. With --collection
only that collection's games are exported.

Examples:
  gamevault export
  gamevault export --format csv --output library.csv
  gamevault export --collection Favorites --format markdown`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json, csv, markdown")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportCollection, "collection", "c", "", "Export a single collection (id or title)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	collectionID := ""
	if exportCollection != "" {
		collection, err := lookupCollection(ctx, client, exportCollection)
		if err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		collectionID = collection.ID
	}

	var out io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(exportFormat) {
	case "json":
		exporter := export.NewJSONExporter(client)
		if collectionID != "" {
			err = exporter.ExportCollectionToWriter(ctx, out, collectionID)
		} else {
			err = exporter.ExportLibraryToWriter(ctx, out)
		}

	case "csv":
		exporter := export.NewCSVExporter(client)
		if collectionID != "" {
			err = exporter.ExportCollectionToCSV(ctx, out, collectionID)
		} else {
			err = exporter.ExportLibraryToCSV(ctx, out)
		}

	case "markdown", "md":
		exporter := export.NewMarkdownExporter(client)
		if collectionID != "" {
			err = exporter.ExportCollectionToMarkdown(ctx, out, collectionID)
		} else {
			err = exporter.ExportLibraryToMarkdown(ctx, out)
		}

	default:
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Unknown format %q (json, csv, markdown)", exportFormat)))
		return nil
	}

	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Export failed: %v", err)))
		return nil
	}

	if exportOutput != "" {
		fmt.Println()
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Exported to %s", exportOutput)))
		fmt.Println()
	}
	return nil
}
