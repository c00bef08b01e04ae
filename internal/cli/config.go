package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"game-library/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show and change the configuration stored in ` + config.GetConfigFile() + `.

Keys: server_url, auth_token, twitch_client_id, db_path, log_path,
log_level, page_size.

Examples:
  gamevault config show
  gamevault config set server_url http://nas.local:8080
  gamevault config set log_level debug`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}

	token := "(not set)"
	if cfg.AuthToken != "" {
		token = "********"
	}

	fmt.Println()
	fmt.Println(styles.Title.Render("Configuration"))
	fmt.Println()
	fmt.Printf("  %s %s\n", styles.Info.Render("server_url:"), cfg.ServerURL)
	fmt.Printf("  %s %s\n", styles.Info.Render("auth_token:"), token)
	fmt.Printf("  %s %s\n", styles.Info.Render("twitch_client_id:"), cfg.TwitchClientID)
	fmt.Printf("  %s %s\n", styles.Info.Render("db_path:"), cfg.DBPath)
	fmt.Printf("  %s %s\n", styles.Info.Render("log_path:"), cfg.LogPath)
	fmt.Printf("  %s %s\n", styles.Info.Render("log_level:"), cfg.LogLevel)
	fmt.Printf("  %s %s\n", styles.Info.Render("theme_name:"), cfg.ThemeName)
	fmt.Printf("  %s %d\n", styles.Info.Render("page_size:"), cfg.PageSize)
	fmt.Println()
	fmt.Printf("File: %s\n", config.GetConfigFile())
	fmt.Println()

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	key := strings.ToLower(args[0])
	value := args[1]

	switch key {
	case "server_url":
		cfg.ServerURL = value
	case "auth_token":
		cfg.AuthToken = value
	case "twitch_client_id":
		cfg.TwitchClientID = value
	case "db_path":
		cfg.DBPath = value
	case "log_path":
		cfg.LogPath = value
	case "log_level":
		switch value {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = value
		default:
			return fmt.Errorf("invalid log level %q (debug, info, warn, error)", value)
		}
	case "page_size":
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 {
			return fmt.Errorf("page_size must be a positive number")
		}
		cfg.PageSize = size
	case "theme_name":
		return fmt.Errorf("use 'gamevault theme set %s' to change the theme", value)
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ %s updated\n", key)
	return nil
}
