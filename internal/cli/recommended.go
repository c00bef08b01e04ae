package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"game-library/internal/display"
)

var recommendedCmd = &cobra.Command{
	Use:     "recommended",
	Aliases: []string{"rec"},
	Short:   "Show recommendation shelves",
	Long: `Fetch the server's themed recommendation shelves.

The server builds these from the library's metadata and play history,
which can take a moment on large libraries.`,
	RunE: runRecommended,
}

func init() {
	rootCmd.AddCommand(recommendedCmd)
}

func runRecommended(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	fmt.Println(styles.Info.Render("Fetching recommendations..."))

	sections, err := client.Recommended(context.Background())
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	if len(sections) == 0 {
		fmt.Println()
		fmt.Println(styles.Info.Render("No recommendations available."))
		fmt.Println()
		return nil
	}

	for _, section := range sections {
		fmt.Println()
		fmt.Println(styles.Title.Render(section.Title))
		for _, game := range section.Games {
			line := game.Title
			if game.Year != nil {
				line = fmt.Sprintf("%s (%d)", line, *game.Year)
			}
			if stars := display.FormatStars(game.Stars); stars != "-" {
				line = fmt.Sprintf("%s  %s", line, stars)
			}
			fmt.Printf("  %s\n", line)
		}
	}
	fmt.Println()

	return nil
}
