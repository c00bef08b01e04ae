package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"game-library/internal/events"
	"game-library/internal/prefs"
	"game-library/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive library browser",
	Long: `Launch the interactive Text User Interface for browsing the library.

The browser provides:
  - Table and cover-grid views with remembered scroll position
  - Filtering by genre, platform, year, decade, collection, age rating
  - Search with a small query language and fuzzy title matching
  - Inline editing of games, collections, and tag names

Keyboard shortcuts:
  ↑/k ↓/j   Navigate
  Enter     View game details
  f         Filter panel
  /         Search
  s / S     Sort field / direction
  v         Toggle table/grid view
  ?         Full help

Examples:
  gamevault browse`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, themeObj, styles, err := loadEnvironment()
	if err != nil {
		return err
	}

	store, err := prefs.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer store.Close()

	bus := events.NewBus()
	for _, topic := range []events.Topic{
		events.GameAdded,
		events.GameUpdated,
		events.GameDeleted,
		events.CollectionUpdated,
		events.CollectionDeleted,
		events.CategoryUpdated,
		events.DeveloperUpdated,
		events.PublisherUpdated,
		events.MetadataReloaded,
	} {
		bus.Subscribe(topic, func(ev events.Event) {
			slog.Debug("catalog change", "topic", string(ev.Topic), "id", ev.ID)
		})
	}

	model := tui.NewModel(newClient(cfg), store, bus, themeObj, styles)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}

	return nil
}
