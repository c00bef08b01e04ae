package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"game-library/internal/api"
	"game-library/internal/display"
	"game-library/internal/domain"
	"game-library/internal/theme"
)

var gameCmd = &cobra.Command{
	Use:     "game",
	Aliases: []string{"games"},
	Short:   "Inspect and edit individual games",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(gameCmd)
	gameCmd.AddCommand(gameViewCmd)
	gameCmd.AddCommand(gameDeleteCmd)
	gameCmd.AddCommand(gameExecutablesCmd)
}

var gameViewCmd = &cobra.Command{
	Use:   "view <game>",
	Short: "View a game's details",
	Long: `View a game's full metadata by id or title.

Examples:
  gamevault game view "Half-Life"
  gamevault game view half`,
	Args: cobra.ExactArgs(1),
	RunE: runGameView,
}

func runGameView(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	game, err := lookupGame(context.Background(), client, args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	displayGameDetails(game, styles)
	return nil
}

func displayGameDetails(game *domain.Game, styles *theme.Styles) {
	fmt.Println()
	fmt.Println(styles.Title.Render(game.Title))
	fmt.Println()

	if game.Summary != "" {
		fmt.Printf("  %s\n", game.Summary)
		fmt.Println()
	}

	fmt.Printf("  %s %s\n", styles.Info.Render("Released:"), display.FormatReleaseDate(game))
	fmt.Printf("  %s %s\n", styles.Info.Render("Stars:"), display.FormatStars(game.Stars))
	if game.CriticRating != nil {
		fmt.Printf("  %s %.0f\n", styles.Info.Render("Critics:"), *game.CriticRating)
	}
	if game.UserRating != nil {
		fmt.Printf("  %s %.0f\n", styles.Info.Render("Users:"), *game.UserRating)
	}
	fmt.Printf("  %s %s\n", styles.Info.Render("Age rating:"), display.FormatAgeRating(game))

	taxonomies := []struct {
		label string
		tags  domain.TagList
	}{
		{"Genres", game.Genre},
		{"Themes", game.Themes},
		{"Platforms", game.Platforms},
		{"Modes", game.GameModes},
		{"Developers", game.Developers},
		{"Publishers", game.Publishers},
		{"Franchises", game.Franchise},
		{"Series", game.Series},
	}
	for _, t := range taxonomies {
		if len(t.tags) == 0 {
			continue
		}
		fmt.Printf("  %s %s\n", styles.Info.Render(t.label+":"), display.FormatTags(t.tags, 60))
	}

	if len(game.Executables) > 0 {
		fmt.Println()
		fmt.Println(styles.Subtitle.Render("Executables:"))
		for _, exe := range game.Executables {
			fmt.Printf("  %s (%s)\n", exe.Label, exe.Path)
		}
	}

	fmt.Println()
}

var gameDeleteConfirm bool

var gameDeleteCmd = &cobra.Command{
	Use:   "delete <game>",
	Short: "Delete a game from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runGameDelete,
}

func init() {
	gameDeleteCmd.Flags().BoolVar(&gameDeleteConfirm, "confirm", false, "Skip confirmation prompt")
}

func runGameDelete(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	game, err := lookupGame(ctx, client, args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	if !gameDeleteConfirm {
		fmt.Println()
		if !promptForConfirmation(fmt.Sprintf("Delete '%s' from the library?", game.Title)) {
			fmt.Println(styles.Info.Render("Cancelled."))
			return nil
		}
	}

	if err := client.DeleteGame(ctx, game.ID); err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ '%s' deleted!", game.Title)))
	fmt.Println()
	return nil
}

var gameExecutablesCmd = &cobra.Command{
	Use:   "executables <game> <label>=<file> [<label>=<file>...]",
	Short: "Replace a game's registered executables",
	Long: `Replace a game's registered executables with the given files.

Each argument pairs a display label with a local file, the whole set
replaces whatever the server had.

Examples:
  gamevault game executables "Half-Life" Main=hl.exe
  gamevault game executables Doom Main=doom.exe "Mod Loader"=loader.exe`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGameExecutables,
}

func runGameExecutables(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	game, err := lookupGame(ctx, client, args[0])
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	uploads := make([]api.ExecutableUpload, 0, len(args)-1)
	for _, arg := range args[1:] {
		label, file, ok := strings.Cut(arg, "=")
		if !ok || label == "" || file == "" {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Expected label=file, got %q", arg)))
			return nil
		}

		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer f.Close()

		uploads = append(uploads, api.ExecutableUpload{
			Label:    label,
			Path:     file,
			Filename: filepath.Base(file),
			Content:  f,
		})
	}

	updated, err := client.UpdateExecutables(ctx, game.ID, uploads)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %d executable(s) registered for '%s'", len(updated.Executables), updated.Title)))
	fmt.Println()
	return nil
}
