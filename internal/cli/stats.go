package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"game-library/internal/catalog"
	"game-library/internal/theme"
)

var statsTopLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	Long: `Display an overview of the library.

Provides:
  - Game counts (total, dated, age-rated)
  - Distribution by decade
  - Top genres and platforms by game count

Examples:
  gamevault stats
  gamevault stats --top 10`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsTopLimit, "top", 5, "Number of top genres/platforms to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	games, err := client.ListGames(context.Background())
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to list games: %v", err)))
		return nil
	}

	displayLibraryStatistics(catalog.Summarize(games), styles)
	return nil
}

func displayLibraryStatistics(stats catalog.Stats, styles *theme.Styles) {
	fmt.Println()
	fmt.Println(styles.Title.Render("📊 Library Statistics"))
	fmt.Println()

	fmt.Println(styles.Subtitle.Render("Games"))
	fmt.Printf("  Total:      %s\n", styles.Info.Render(fmt.Sprintf("%d", stats.Total)))
	fmt.Printf("  Dated:      %s\n", styles.Info.Render(fmt.Sprintf("%d", stats.WithYear)))
	fmt.Printf("  Age-rated:  %s\n", styles.Info.Render(fmt.Sprintf("%d", stats.Rated)))
	fmt.Println()

	if len(stats.ByDecade) > 0 {
		fmt.Println(styles.Subtitle.Render("By Decade"))
		decades := make([]int, 0, len(stats.ByDecade))
		for d := range stats.ByDecade {
			decades = append(decades, d)
		}
		sort.Ints(decades)

		for _, d := range decades {
			count := stats.ByDecade[d]
			bar := renderBar(scaledWidth(count, stats.Total), 20, "█")
			fmt.Printf("  %ds %s %s\n", d, bar, styles.Cell.Render(fmt.Sprintf("(%d)", count)))
		}
		fmt.Println()
	}

	displayTopCounts("Top Genres", stats.ByGenre, styles, stats.Total)
	displayTopCounts("Top Platforms", stats.ByPlatform, styles, stats.Total)
}

func displayTopCounts(heading string, counts map[string]int, styles *theme.Styles, total int) {
	if len(counts) == 0 {
		return
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	limit := statsTopLimit
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	fmt.Println(styles.Subtitle.Render(fmt.Sprintf("%s (%d of %d)", heading, limit, len(entries))))
	for i := 0; i < limit; i++ {
		e := entries[i]
		bar := renderBar(scaledWidth(e.count, total), 20, "█")
		fmt.Printf("  %d. %s %s %s\n", i+1, styles.Info.Render(e.name), bar, styles.Cell.Render(fmt.Sprintf("(%d)", e.count)))
	}
	fmt.Println()
}

// scaledWidth maps count to a bar width proportional to the library size.
func scaledWidth(count, total int) int {
	if total == 0 {
		return 0
	}
	return count * 20 / total
}

func renderBar(value, maxWidth int, char string) string {
	if value > maxWidth {
		value = maxWidth
	}
	if value < 1 {
		value = 1
	}
	return strings.Repeat(char, value)
}
