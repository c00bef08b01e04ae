package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"game-library/internal/domain"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Manage server-side categories",
	Long: `Manage categories, the server-maintained game groupings.

Categories are identified by title on the wire. Renaming keeps the
category's games; deleting only removes the grouping.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	categoryCmd.AddCommand(categoryCleanupCmd)
	categoryCmd.AddCommand(categoryRefreshCmd)
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	RunE:  runCategoryList,
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	categories, err := client.ListCategories(context.Background())
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to list categories: %v", err)))
		return nil
	}

	if len(categories) == 0 {
		fmt.Println()
		fmt.Println(styles.Info.Render("No categories found."))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Title.Render("Categories"))
	fmt.Println()
	for _, c := range categories {
		fmt.Printf("  %s (%d games)\n", c.Title, c.GameCount)
	}
	fmt.Println()
	fmt.Printf("Total: %d categories\n", len(categories))
	fmt.Println()

	return nil
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <title> <new-title>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryRename,
}

func runCategoryRename(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	updated, err := client.UpdateCategory(context.Background(), args[0], &domain.Category{Title: args[1]})
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to rename category: %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Category renamed to '%s'", updated.Title)))
	fmt.Println()
	return nil
}

var deleteCategoryConfirm bool

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryDelete,
}

func init() {
	categoryDeleteCmd.Flags().BoolVar(&deleteCategoryConfirm, "confirm", false, "Skip confirmation prompt")
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	if !deleteCategoryConfirm {
		fmt.Println()
		if !promptForConfirmation(fmt.Sprintf("Delete category '%s'?", args[0])) {
			fmt.Println(styles.Info.Render("Cancelled."))
			return nil
		}
	}

	if err := client.DeleteCategory(context.Background(), args[0]); err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Category '%s' deleted!", args[0])))
	fmt.Println()
	return nil
}

var categoryCleanupCmd = &cobra.Command{
	Use:   "cleanup <title>",
	Short: "Delete a category if it is no longer in use",
	Long: `Best-effort delete of a category that may have become unused.

If the category still has games the server answers with a conflict and
the category is left alone. Nothing is reported as an error either way.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryCleanup,
}

func runCategoryCleanup(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	client.CleanupCategory(context.Background(), args[0])

	fmt.Println()
	fmt.Println(styles.Info.Render(fmt.Sprintf("Cleanup requested for '%s'.", args[0])))
	fmt.Println()
	return nil
}

var categoryRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild category metadata on the server",
	Long: `Ask the server to rebuild its category metadata.

This walks the whole library on the server side and can take a while.`,
	RunE: runCategoryRefresh,
}

func runCategoryRefresh(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	fmt.Println(styles.Info.Render("Refreshing categories, this can take a while..."))

	if err := client.RefreshCategories(context.Background()); err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render("✓ Categories refreshed!"))
	fmt.Println()
	return nil
}
