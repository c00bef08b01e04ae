package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"game-library/internal/config"
	"game-library/internal/theme"
	"game-library/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage application theme",
	Long: `Manage application theme settings.

Run without arguments to launch the interactive theme selector TUI.
Use subcommands for direct theme management.

Examples:
  gamevault theme              # Launch interactive TUI
  gamevault theme set dracula  # Set theme directly
  gamevault theme list         # List available themes
  gamevault theme show         # Show current theme`,
	RunE: runThemeTUI,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set application theme",
	Long: `Set the application theme.

Available themes:
  - default
  - dark
  - light
  - dracula
  - nord
  - gruvbox

Examples:
  gamevault theme set dracula
  gamevault theme set nord`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long:  `List all available themes.`,
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current theme",
	Long:  `Display the currently selected theme and its color palette.`,
	RunE:  runThemeShow,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
}

// launches theme selector
func runThemeTUI(cmd *cobra.Command, args []string) error {
	model := tui.NewSetupModel()
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run theme TUI: %w", err)
	}

	// read config to see which theme was selected
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.ThemeName != "" {
		fmt.Println()
		fmt.Printf("✓ Theme set to '%s'\n", cfg.ThemeName)
		fmt.Println()
	}

	return nil
}

// sets the theme directly
func runThemeSet(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	if !theme.ThemeExists(themeName) {
		return fmt.Errorf("theme '%s' not found. Run 'gamevault theme list' to see available themes", themeName)
	}

	if err := config.UpdateTheme(themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Printf("✓ Theme set to '%s'\n", themeName)
	return nil
}

// lists all available themes
func runThemeList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.GetDefaultConfig()
	}

	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}

	currentTheme, err := theme.GetTheme(themeName)
	if err != nil {
		currentTheme = theme.GetDefaultTheme()
	}

	styles := theme.NewStyles(currentTheme)

	themes := theme.ListThemes()

	fmt.Println()
	fmt.Println(styles.Header.Render(" Available Themes "))
	fmt.Println()

	for _, name := range themes {
		prefix := "  "
		if name == themeName {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Printf("%s%s\n", prefix, name)
	}

	fmt.Println()
	return nil
}

// displays current theme details
func runThemeShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}

	themeObj, err := theme.GetTheme(themeName)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	styles := theme.NewStyles(themeObj)

	fmt.Println()
	fmt.Println(styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", themeName)))
	fmt.Println()

	fmt.Println(styles.Info.Render("Color Palette:"))
	fmt.Println()

	colors := []struct {
		name  string
		value string
	}{
		{"Primary", themeObj.Primary},
		{"Success", themeObj.Success},
		{"Error", themeObj.Error},
		{"Warning", themeObj.Warning},
		{"Info", themeObj.Info},
		{"High", themeObj.RatingHigh},
		{"Medium", themeObj.RatingMedium},
		{"Low", themeObj.RatingLow},
		{"Text", themeObj.TextPrimary},
		{"Border", themeObj.BorderColor},
	}

	for _, c := range colors {
		colorSample := lipgloss.NewStyle().
			Background(lipgloss.Color(c.value)).
			Foreground(lipgloss.Color(c.value)).
			Render("  ████  ")
		fmt.Printf("  %-12s %s %s\n", c.name+":", colorSample, c.value)
	}

	fmt.Println()
	return nil
}
