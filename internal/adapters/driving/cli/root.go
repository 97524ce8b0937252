// Package cli wires the cobra commands that drive the import and media
// migration services.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/eventbyen/eventsync-cli/internal/adapters/driven/config/file"
	"github.com/eventbyen/eventsync-cli/internal/adapters/driven/csvfile"
	"github.com/eventbyen/eventsync-cli/internal/adapters/driven/fetch"
	"github.com/eventbyen/eventsync-cli/internal/adapters/driven/sanity"
	"github.com/eventbyen/eventsync-cli/internal/core/ports/driving"
	"github.com/eventbyen/eventsync-cli/internal/core/services"
	"github.com/eventbyen/eventsync-cli/internal/logger"
)

var version = "0.1.0"

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "eventsync",
	Short: "Migrate event records and images into the content store",
	Long: `eventsync moves an event export into the content store in two stages.
The import stage transforms CSV rows into event documents and upserts them
as one batch. The migrate-images stage re-hosts externally referenced
images as store assets and rewires each event to point at its asset.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file path (default ~/.eventsync/config.toml)")
}

// Execute runs the root command. Any error exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the config file path and loads it.
func loadConfig() (configfile.Config, error) {
	path := configFlag
	if path == "" {
		var err error
		path, err = configfile.DefaultPath()
		if err != nil {
			return configfile.Default(), err
		}
	}
	return configfile.Load(path)
}

// newStoreClient builds the store client for one invocation's token.
func newStoreClient(ctx context.Context, token string) (*sanity.Client, configfile.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	client := sanity.NewClient(ctx, sanity.Config{
		ProjectID:  cfg.ProjectID,
		Dataset:    cfg.Dataset,
		APIVersion: cfg.APIVersion,
	}, token)
	return client, cfg, nil
}

// Constructors are package variables so command tests can swap in mocks.
var newImporter = func(ctx context.Context, token string) (driving.Importer, error) {
	client, _, err := newStoreClient(ctx, token)
	if err != nil {
		return nil, err
	}
	return services.NewImporter(csvfile.NewReader(), client), nil
}

var newMediaMigrator = func(ctx context.Context, token string) (driving.MediaMigrator, error) {
	client, cfg, err := newStoreClient(ctx, token)
	if err != nil {
		return nil, err
	}

	fetcher := fetch.New(
		time.Duration(cfg.FetchTimeoutSeconds)*time.Second,
		cfg.FetchRatePerSecond,
	)
	return services.NewMediaMigrator(client, fetcher), nil
}
