package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"game-library/internal/api"
	"game-library/internal/domain"
)

var tagCmd = &cobra.Command{
	Use:     "tag",
	Aliases: []string{"tags"},
	Short:   "Manage taxonomy tags",
	Long: `Manage the flat tag taxonomies: themes, platforms, game-modes,
player-perspectives, game-engines, franchises, series, keywords,
developers and publishers.

Renaming a tag updates it on every game that carries it. Deleting a tag
removes it from the taxonomy and from every game.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagRenameCmd)
	tagCmd.AddCommand(tagDeleteCmd)
}

// parseTaxonomy accepts the resource name with either hyphens or
// camelCase-ish shorthand ("gamemodes" works for "game-modes").
func parseTaxonomy(name string) (api.Taxonomy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, t := range api.Taxonomies {
		if normalized == string(t) || normalized == strings.ReplaceAll(string(t), "-", "") {
			return t, nil
		}
	}

	names := make([]string, len(api.Taxonomies))
	for i, t := range api.Taxonomies {
		names[i] = string(t)
	}
	return "", fmt.Errorf("unknown taxonomy %q (one of: %s)", name, strings.Join(names, ", "))
}

var tagListCmd = &cobra.Command{
	Use:   "list <taxonomy>",
	Short: "List the tags of a taxonomy",
	Long: `List every tag of one taxonomy.

Examples:
  gamevault tag list platforms
  gamevault tag list game-modes`,
	Args: cobra.ExactArgs(1),
	RunE: runTagList,
}

func runTagList(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	taxonomy, err := parseTaxonomy(args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	tags, err := client.ListTaxonomy(context.Background(), taxonomy)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	if len(tags) == 0 {
		fmt.Println()
		fmt.Println(styles.Info.Render(fmt.Sprintf("No %s tags found.", taxonomy)))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Title.Render(string(taxonomy)))
	fmt.Println()
	for _, tag := range tags {
		fmt.Printf("  %s\n", tag.Name)
	}
	fmt.Println()
	fmt.Printf("Total: %d tag(s)\n", len(tags))
	fmt.Println()

	return nil
}

var tagRenameCmd = &cobra.Command{
	Use:   "rename <taxonomy> <name> <new-name>",
	Short: "Rename a tag across the whole library",
	Args:  cobra.ExactArgs(3),
	RunE:  runTagRename,
}

func runTagRename(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	taxonomy, err := parseTaxonomy(args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	tag, err := lookupTag(ctx, client, taxonomy, args[1])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	renamed, err := client.RenameTag(ctx, taxonomy, tag.ID, args[2])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Tag '%s' renamed to '%s'", tag.Name, renamed.Name)))
	fmt.Println()
	return nil
}

var deleteTagConfirm bool

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <taxonomy> <name>",
	Short: "Delete a tag from its taxonomy",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagDelete,
}

func init() {
	tagDeleteCmd.Flags().BoolVar(&deleteTagConfirm, "confirm", false, "Skip confirmation prompt")
}

func runTagDelete(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	taxonomy, err := parseTaxonomy(args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	tag, err := lookupTag(ctx, client, taxonomy, args[1])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	if !deleteTagConfirm {
		fmt.Println()
		if !promptForConfirmation(fmt.Sprintf("Delete %s tag '%s' from every game?", taxonomy, tag.Name)) {
			fmt.Println(styles.Info.Render("Cancelled."))
			return nil
		}
	}

	if err := client.DeleteTag(ctx, taxonomy, tag.ID); err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Tag '%s' deleted!", tag.Name)))
	fmt.Println()
	return nil
}

// taxonomyLister narrows the client surface used by the tag lookup.
type taxonomyLister interface {
	ListTaxonomy(ctx context.Context, taxonomy api.Taxonomy) ([]domain.Tag, error)
}

// lookupTag resolves a tag by id or case-insensitive name.
func lookupTag(ctx context.Context, client taxonomyLister, taxonomy api.Taxonomy, ref string) (*domain.Tag, error) {
	tags, err := client.ListTaxonomy(ctx, taxonomy)
	if err != nil {
		return nil, err
	}

	for i := range tags {
		if tags[i].ID == ref || strings.EqualFold(tags[i].Name, ref) {
			return &tags[i], nil
		}
	}
	return nil, fmt.Errorf("%s tag %q not found", taxonomy, ref)
}
