package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"game-library/internal/api"
)

var mediaBackground bool

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage cover and background images",
	Long: `Upload or remove the cover and background images of games,
collections and categories.

The entity argument is one of: game, collection, category. Without
--background the cover slot is targeted.

Examples:
  gamevault media set game "Half-Life" cover.png
  gamevault media set collection Favorites art.jpg --background
  gamevault media remove game "Half-Life"`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var mediaSetCmd = &cobra.Command{
	Use:   "set <entity> <ref> <file>",
	Short: "Upload a cover or background image",
	Args:  cobra.ExactArgs(3),
	RunE:  runMediaSet,
}

var mediaRemoveCmd = &cobra.Command{
	Use:   "remove <entity> <ref>",
	Short: "Remove a cover or background image",
	Args:  cobra.ExactArgs(2),
	RunE:  runMediaRemove,
}

func init() {
	rootCmd.AddCommand(mediaCmd)
	mediaCmd.AddCommand(mediaSetCmd)
	mediaCmd.AddCommand(mediaRemoveCmd)
	mediaCmd.PersistentFlags().BoolVarP(&mediaBackground, "background", "b", false, "Target the background image instead of the cover")
}

func mediaKind() api.MediaKind {
	if mediaBackground {
		return api.MediaBackground
	}
	return api.MediaCover
}

func runMediaSet(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	entity, ref, file := args[0], args[1], args[2]

	if err := api.ValidateImageFilename(file); err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	filename := filepath.Base(file)
	kind := mediaKind()

	var name string
	switch entity {
	case "game":
		game, err := lookupGame(ctx, client, ref)
		if err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		if _, err := client.UploadGameMedia(ctx, game.ID, kind, filename, f); err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		name = game.Title

	case "collection":
		collection, err := lookupCollection(ctx, client, ref)
		if err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		if _, err := client.UploadCollectionMedia(ctx, collection.ID, kind, filename, f); err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		name = collection.Title

	case "category":
		if _, err := client.UploadCategoryMedia(ctx, ref, kind, filename, f); err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		name = ref

	default:
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Unknown entity %q (game, collection, category)", entity)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %s updated for '%s'", kind, name)))
	fmt.Println()
	return nil
}

func runMediaRemove(cmd *cobra.Command, args []string) error {
	cfg, _, styles, err := loadEnvironment()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	entity, ref := args[0], args[1]
	kind := mediaKind()

	var name string
	switch entity {
	case "game":
		game, err := lookupGame(ctx, client, ref)
		if err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		if _, err := client.DeleteGameMedia(ctx, game.ID, kind); err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		name = game.Title

	case "collection":
		collection, err := lookupCollection(ctx, client, ref)
		if err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		if _, err := client.DeleteCollectionMedia(ctx, collection.ID, kind); err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
			return nil
		}
		name = collection.Title

	default:
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Unknown entity %q (game, collection)", entity)))
		return nil
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %s removed for '%s'", kind, name)))
	fmt.Println()
	return nil
}
