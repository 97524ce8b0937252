package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <csv-file> <token>",
	Short: "Import events from a CSV export",
	Long: `Transforms each row of the CSV export into an event document and
upserts all documents into the content store as one batch. Re-running the
import replaces existing documents in full; attributes missing from the
export are dropped from the store.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	// Arguments are valid at this point; execution failures are not
	// usage problems.
	cmd.SilenceUsage = true

	path, token := args[0], args[1]

	importer, err := newImporter(cmd.Context(), token)
	if err != nil {
		return fmt.Errorf("configure import: %w", err)
	}

	cmd.Printf("Importing events from %s...\n", path)

	summary, err := importer.Import(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if summary.Skipped > 0 {
		cmd.Printf("Skipped %d rows without a usable identity.\n", summary.Skipped)
	}
	cmd.Printf("Imported %d rows: %d created, %d updated.\n",
		summary.Read-summary.Skipped, summary.Created, summary.Updated)
	return nil
}
