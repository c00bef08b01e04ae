package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"game-library/internal/domain"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"collections"},
	Short:   "Manage collections",
	Long: `Manage user-curated collections of games.

Collections group games under a title. Category groupings are managed
by the server and have their own command, see 'gamevault category'.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionRenameCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	collectionCmd.AddCommand(collectionGamesCmd)
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionRemoveCmd)
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	RunE:  runCollectionList,
}

func runCollectionList(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	collections, err := client.ListCollections(context.Background())
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to list collections: %v", err)))
		return nil
	}

	if len(collections) == 0 {
		fmt.Println()
		fmt.Println(styles.Info.Render("No collections found."))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Title.Render("Collections"))
	fmt.Println()
	for _, c := range collections {
		count := c.GameCount
		if count == 0 {
			count = len(c.GameIDs)
		}
		fmt.Printf("  %s (%d games)\n", c.Title, count)
	}
	fmt.Println()
	fmt.Printf("Total: %d collection(s)\n", len(collections))
	fmt.Println()

	return nil
}

var collectionCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionCreate,
}

func runCollectionCreate(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	created, err := client.CreateCollection(context.Background(), &domain.Collection{Title: args[0]})
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to create collection: %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Collection '%s' created!", created.Title)))
	fmt.Println()
	return nil
}

var collectionRenameCmd = &cobra.Command{
	Use:   "rename <collection> <new-title>",
	Short: "Rename a collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runCollectionRename,
}

func runCollectionRename(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	collection, err := lookupCollection(ctx, client, args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	collection.Title = args[1]
	updated, err := client.UpdateCollection(ctx, collection)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to rename collection: %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Collection renamed to '%s'", updated.Title)))
	fmt.Println()
	return nil
}

var deleteCollectionConfirm bool

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete <collection>",
	Short: "Delete a collection",
	Long: `Delete a collection by id or title.

The games in the collection are not touched, only the grouping is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollectionDelete,
}

func init() {
	collectionDeleteCmd.Flags().BoolVar(&deleteCollectionConfirm, "confirm", false, "Skip confirmation prompt")
}

func runCollectionDelete(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	collection, err := lookupCollection(ctx, client, args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	if !deleteCollectionConfirm {
		fmt.Println()
		if !promptForConfirmation(fmt.Sprintf("Delete collection '%s'?", collection.Title)) {
			fmt.Println(styles.Info.Render("Cancelled."))
			return nil
		}
	}

	if err := client.DeleteCollection(ctx, collection.ID); err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to delete collection: %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Collection '%s' deleted!", collection.Title)))
	fmt.Println()
	return nil
}

var collectionGamesCmd = &cobra.Command{
	Use:   "games <collection>",
	Short: "List the games in a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionGames,
}

func runCollectionGames(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	collection, err := lookupCollection(ctx, client, args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	games, err := client.CollectionGames(ctx, collection.ID)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to load games: %v", err)))
		return nil
	}

	if len(games) == 0 {
		fmt.Println()
		fmt.Println(styles.Info.Render(fmt.Sprintf("Collection '%s' is empty.", collection.Title)))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Title.Render(collection.Title))
	displayGamesTable(games, styles)
	return nil
}

var collectionAddCmd = &cobra.Command{
	Use:   "add <collection> <game-title>",
	Short: "Add a game to a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollectionMembership(args[0], args[1], true)
	},
}

var collectionRemoveCmd = &cobra.Command{
	Use:   "remove <collection> <game-title>",
	Short: "Remove a game from a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollectionMembership(args[0], args[1], false)
	},
}

func runCollectionMembership(collectionRef, gameRef string, add bool) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	collection, err := lookupCollection(ctx, client, collectionRef)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	game, err := lookupGame(ctx, client, gameRef)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	members := collection.MemberSet()
	if add {
		if members[game.ID] {
			fmt.Println(styles.Info.Render(fmt.Sprintf("'%s' is already in '%s'.", game.Title, collection.Title)))
			return nil
		}
		collection.GameIDs = append(collection.GameIDs, game.ID)
	} else {
		if !members[game.ID] {
			fmt.Println(styles.Info.Render(fmt.Sprintf("'%s' is not in '%s'.", game.Title, collection.Title)))
			return nil
		}
		kept := collection.GameIDs[:0]
		for _, id := range collection.GameIDs {
			if id != game.ID {
				kept = append(kept, id)
			}
		}
		collection.GameIDs = kept
	}

	if _, err := client.UpdateCollection(ctx, collection); err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to update collection: %v", err)))
		return nil
	}

	verb := "added to"
	if !add {
		verb = "removed from"
	}
	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ '%s' %s '%s'", game.Title, verb, collection.Title)))
	fmt.Println()
	return nil
}

// lookupCollection resolves a collection by id or case-insensitive title.
func lookupCollection(ctx context.Context, client apiLister, ref string) (*domain.Collection, error) {
	collections, err := client.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	for _, c := range collections {
		if c.ID == ref || strings.EqualFold(c.Title, ref) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("collection %q not found", ref)
}

// gameLister narrows the client surface used by the game lookup.
type gameLister interface {
	ListGames(ctx context.Context) ([]*domain.Game, error)
}

// lookupGame resolves a game by id, exact title, then unique normalized
// title prefix.
func lookupGame(ctx context.Context, client gameLister, ref string) (*domain.Game, error) {
	games, err := client.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	for _, g := range games {
		if g.ID == ref || strings.EqualFold(g.Title, ref) {
			return g, nil
		}
	}

	var matches []*domain.Game
	needle := strings.ToLower(ref)
	for _, g := range games {
		if strings.HasPrefix(strings.ToLower(g.Title), needle) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("game %q not found", ref)
	default:
		titles := make([]string, 0, len(matches))
		for _, g := range matches {
			titles = append(titles, g.Title)
		}
		return nil, fmt.Errorf("game %q is ambiguous: %s", ref, strings.Join(titles, ", "))
	}
}

func promptForConfirmation(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("%s (y/N): ", prompt)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
