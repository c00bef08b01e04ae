package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"game-library/internal/catalog"
	"game-library/internal/display"
	"game-library/internal/domain"
	"game-library/internal/theme"
)

var (
	// list command flags
	listGenre      string
	listPlatform   string
	listDeveloper  string
	listYear       int
	listDecade     int
	listCollection string
	listAgeRating  string
	listSort       string
	listAscending  bool
	listLimit      int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games in the library",
	Long: `List games with optional filtering and sorting.

Exactly one filter flag may be set. Sort fields: title, year, stars,
releaseDate, criticRating, userRating, ageRating.

Examples:
  gamevault list
  gamevault list --genre RPG
  gamevault list --decade 1990 --sort stars
  gamevault list --platform "PlayStation 2" --sort year --asc
  gamevault list --age-rating 2-18`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listGenre, "genre", "g", "", "Filter by genre")
	listCmd.Flags().StringVarP(&listPlatform, "platform", "p", "", "Filter by platform")
	listCmd.Flags().StringVarP(&listDeveloper, "developer", "d", "", "Filter by developer")
	listCmd.Flags().IntVarP(&listYear, "year", "y", 0, "Filter by release year")
	listCmd.Flags().IntVar(&listDecade, "decade", 0, "Filter by decade (e.g. 1990)")
	listCmd.Flags().StringVarP(&listCollection, "collection", "c", "", "Filter by collection id or title")
	listCmd.Flags().StringVar(&listAgeRating, "age-rating", "", "Filter by age rating key (category-rating, e.g. 2-18)")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "title", "Sort field")
	listCmd.Flags().BoolVar(&listAscending, "asc", false, "Sort ascending (default order depends on the field)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most n games (0 = all)")
}

// listSelection turns the filter flags into a selection. At most one
// filter flag is honored, matching the single-dimension filter model.
func listSelection(cmd *cobra.Command) (catalog.Selection, error) {
	set := 0
	for _, name := range []string{"genre", "platform", "developer", "year", "decade", "collection", "age-rating"} {
		if cmd.Flags().Changed(name) {
			set++
		}
	}
	if set > 1 {
		return catalog.Selection{}, fmt.Errorf("only one filter flag may be set")
	}

	switch {
	case listGenre != "":
		return catalog.SelectGenre(listGenre), nil
	case listPlatform != "":
		return catalog.SelectLabel(catalog.FilterPlatform, listPlatform), nil
	case listDeveloper != "":
		return catalog.SelectLabel(catalog.FilterDeveloper, listDeveloper), nil
	case cmd.Flags().Changed("year"):
		year := listYear
		return catalog.SelectYear(&year), nil
	case cmd.Flags().Changed("decade"):
		decade := listDecade
		return catalog.SelectDecade(&decade), nil
	case listCollection != "":
		return catalog.SelectCollection(listCollection), nil
	case listAgeRating != "":
		key, err := catalog.ParseAgeRatingKey(listAgeRating)
		if err != nil {
			return catalog.Selection{}, err
		}
		return catalog.SelectAgeRating(&key), nil
	}
	return catalog.SelectAll(), nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	sel, err := listSelection(cmd)
	if err != nil {
		return err
	}

	games, err := client.ListGames(ctx)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to list games: %v", err)))
		return nil
	}

	var members map[string]bool
	if sel.Kind == catalog.FilterCollection {
		members, err = resolveCollectionMembers(ctx, client, &sel)
		if err != nil {
			return err
		}
	}

	pred := catalog.Predicate(sel, members)
	filtered := games[:0]
	for _, g := range games {
		if pred(g) {
			filtered = append(filtered, g)
		}
	}

	field := catalog.SortField(listSort)
	ascending := field == catalog.SortTitle
	if cmd.Flags().Changed("asc") {
		ascending = listAscending
	}
	cmp := catalog.Comparator(field, ascending)
	sort.SliceStable(filtered, func(i, j int) bool {
		return cmp(filtered[i], filtered[j]) < 0
	})

	if listLimit > 0 && len(filtered) > listLimit {
		filtered = filtered[:listLimit]
	}

	if len(filtered) == 0 {
		fmt.Println()
		fmt.Println(styles.Info.Render("No games found."))
		fmt.Println()
		return nil
	}

	displayGamesTable(filtered, styles)
	return nil
}

// resolveCollectionMembers accepts a collection id or title and loads
// its member set. The selection is rewritten to the real id.
func resolveCollectionMembers(ctx context.Context, client apiLister, sel *catalog.Selection) (map[string]bool, error) {
	collections, err := client.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	for _, c := range collections {
		if c.ID == sel.CollectionID || strings.EqualFold(c.Title, sel.CollectionID) {
			sel.CollectionID = c.ID
			return c.MemberSet(), nil
		}
	}
	return nil, fmt.Errorf("collection %q not found", sel.CollectionID)
}

// apiLister narrows the client surface used by the collection lookup so
// tests can stub it.
type apiLister interface {
	ListCollections(ctx context.Context) ([]*domain.Collection, error)
}

func displayGamesTable(games []*domain.Game, styles *theme.Styles) {
	fmt.Println()

	headers := []string{
		styles.Header.Render(pad("Title", 40)),
		styles.Header.Render(pad("Year", 6)),
		styles.Header.Render(pad("Stars", 7)),
		styles.Header.Render(pad("Age", 10)),
		styles.Header.Render(pad("Genres", 24)),
	}
	fmt.Println(strings.Join(headers, " "))

	separator := strings.Repeat("─", 92)
	fmt.Println(styles.Separator.Render(separator))

	for _, game := range games {
		printGameRow(game, styles)
	}

	fmt.Println()
	fmt.Printf("Total: %d game(s)\n", len(games))
	fmt.Println()
}

func printGameRow(game *domain.Game, styles *theme.Styles) {
	rowStyle := gameRowStyle(game, styles)

	year := "-"
	if game.Year != nil {
		year = fmt.Sprintf("%d", *game.Year)
	}

	cells := []string{
		rowStyle.Render(styles.Cell.Render(pad(display.Truncate(game.Title, 38), 38))),
		rowStyle.Render(styles.Cell.Render(pad(year, 4))),
		rowStyle.Render(styles.Cell.Render(pad(display.FormatStars(game.Stars), 5))),
		rowStyle.Render(styles.Cell.Render(pad(display.FormatAgeRating(game), 8))),
		rowStyle.Render(styles.Cell.Render(pad(display.FormatTags(game.Genre, 22), 22))),
	}

	fmt.Println(strings.Join(cells, " "))
}

func gameRowStyle(game *domain.Game, styles *theme.Styles) lipgloss.Style {
	if game.Stars == nil {
		return styles.UnratedRow
	}
	switch {
	case *game.Stars >= 4:
		return styles.HighRatingRow
	case *game.Stars >= 2.5:
		return styles.MediumRatingRow
	default:
		return styles.LowRatingRow
	}
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
