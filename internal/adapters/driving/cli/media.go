package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateImagesCmd = &cobra.Command{
	Use:   "migrate-images <token>",
	Short: "Re-host external event images as store assets",
	Long: `Queries the store for events still holding an external image URL,
downloads each image, uploads it as a store asset and patches the event to
reference the asset while removing the external URL. A failing item is
reported and skipped; the run always completes with a summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runMigrateImages,
}

func init() {
	rootCmd.AddCommand(migrateImagesCmd)
}

func runMigrateImages(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	token := args[0]

	migrator, err := newMediaMigrator(cmd.Context(), token)
	if err != nil {
		return fmt.Errorf("configure migration: %w", err)
	}

	cmd.Println("Fetching events with external images...")

	summary, err := migrator.Migrate(cmd.Context())
	if err != nil {
		return fmt.Errorf("migrate images: %w", err)
	}

	for _, result := range summary.Results {
		if result.Migrated() {
			cmd.Printf("  ok   %s -> %s\n", result.DocumentID, result.AssetID)
		} else {
			cmd.Printf("  FAIL %s: %s\n", result.DocumentID, result.Err)
		}
	}

	cmd.Printf("Done: %d migrated, %d failed.\n", summary.Migrated, summary.Failed)
	return nil
}
