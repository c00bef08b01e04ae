package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"game-library/internal/catalog"
	"game-library/internal/fuzzy"
	"game-library/internal/prefs"
	"game-library/internal/query"
)

var (
	searchFuzzy     bool
	searchThreshold int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the library",
	Long: `Search games by title with optional field filters.

The query mixes free text with field:value terms. Quoted values may
contain spaces. Fields: genre, theme, platform, mode, perspective,
engine, developer, publisher, franchise, series, keyword, year, decade,
rating (or age), collection, sort, order.

Examples:
  gamevault search zelda
  gamevault search "genre:RPG sort:stars"
  gamevault search 'platform:"PlayStation 2" year:2003'
  gamevault search szm --fuzzy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVarP(&searchFuzzy, "fuzzy", "f", false, "Fuzzy title matching (subsequence scoring)")
	searchCmd.Flags().IntVar(&searchThreshold, "threshold", 60, "Minimum fuzzy score (0-100)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	input := strings.Join(args, " ")
	q, err := query.Parse(input)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	games, err := client.ListGames(ctx)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to list games: %v", err)))
		return nil
	}

	sel := catalog.SelectAll()
	if q.HasFilter {
		sel = q.Selection
	}

	var members map[string]bool
	if sel.Kind == catalog.FilterCollection {
		members, err = resolveCollectionMembers(ctx, client, &sel)
		if err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
	}

	pred := catalog.Predicate(sel, members)
	filtered := games[:0]
	for _, g := range games {
		if pred(g) {
			filtered = append(filtered, g)
		}
	}

	if title := q.TitleText(); title != "" {
		if searchFuzzy {
			results := fuzzy.MatchGames(title, filtered, searchThreshold)
			filtered = filtered[:0]
			for _, r := range results {
				filtered = append(filtered, r.Game)
			}
		} else {
			needle := catalog.NormalizeTitle(title)
			kept := filtered[:0]
			for _, g := range filtered {
				if strings.Contains(catalog.NormalizeTitle(g.Title), needle) {
					kept = append(kept, g)
				}
			}
			filtered = kept
		}
	}

	// Explicit sort terms win; fuzzy results otherwise stay score-ordered.
	if q.HasSort || !searchFuzzy {
		field := catalog.SortTitle
		if q.HasSort {
			field = q.SortField
		}
		ascending := field == catalog.SortTitle
		if q.HasOrder {
			ascending = q.Ascending
		}
		cmp := catalog.Comparator(field, ascending)
		sort.SliceStable(filtered, func(i, j int) bool {
			return cmp(filtered[i], filtered[j]) < 0
		})
	}

	recordSearch(cfg.DBPath, input)

	if len(filtered) == 0 {
		fmt.Println()
		fmt.Println(styles.Info.Render(fmt.Sprintf("No games match %q.", input)))
		fmt.Println()
		return nil
	}

	displayGamesTable(filtered, styles)
	return nil
}

// recordSearch appends the query to the recent-search history. History
// is a convenience, failures only get logged by the store.
func recordSearch(dbPath, input string) {
	store, err := prefs.Open(dbPath)
	if err != nil {
		return
	}
	defer store.Close()
	_ = store.AddRecentSearch(input)
}
