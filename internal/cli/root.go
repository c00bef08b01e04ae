package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"game-library/internal/api"
	"game-library/internal/config"
	"game-library/internal/logging"
	"game-library/internal/theme"
	"game-library/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "gamevault",
	Short: "GameVault - Browse and manage your game library",
	Long: `GameVault is a command-line client for a self-hosted game library
server. Browse, filter, and search the catalog, edit game metadata,
organize collections, and export the library, from the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// check if we need to run initial setup
		return checkAndRunSetup()
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnvironment resolves config, theme, and styles in one go. Every
// command that talks to the server or renders styled output starts here.
func loadEnvironment() (*config.Config, *theme.Theme, *theme.Styles, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logging.Setup(cfg.LogPath, cfg.LogLevel)

	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}
	themeObj, err := theme.GetTheme(themeName)
	if err != nil {
		themeObj = theme.GetDefaultTheme()
	}

	return cfg, themeObj, theme.NewStyles(themeObj), nil
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(api.Config{
		BaseURL:        cfg.ServerURL,
		AuthToken:      cfg.AuthToken,
		TwitchClientID: cfg.TwitchClientID,
	})
}

func displayWelcome() {
	_, _, styles, err := loadEnvironment()
	if err != nil {
		styles = theme.NewStyles(theme.GetDefaultTheme())
	}

	title := styles.Title.Render(`
		------------------------------------------------------

		               G A M E V A U L T

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("Your library, one terminal away")

	fmt.Println()
	fmt.Println(title)
	fmt.Println(subtitle)
	fmt.Println()
	fmt.Println("Run 'gamevault --help' to see available commands.")
	fmt.Println()
}

// checks if initial setup is needed and runs it
func checkAndRunSetup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// if theme not set then run initial setup
	if cfg.ThemeName == "" {
		fmt.Println()
		fmt.Println("Welcome to GameVault! Let's set up your theme.")
		fmt.Println()

		model := tui.NewSetupModel()
		p := tea.NewProgram(model, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run setup: %w", err)
		}

		// read config to see which theme was selected
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config after setup: %w", err)
		}

		fmt.Println()
		if cfg.ThemeName != "" {
			fmt.Printf("✓ Theme configured: '%s'\n", cfg.ThemeName)
		} else {
			fmt.Println("Theme configuration complete!")
		}
		fmt.Println()
	}

	return nil
}
