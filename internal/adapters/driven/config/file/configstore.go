// Package file loads eventsync configuration from a TOML file.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the process-wide settings for the target store and the
// image fetcher. Store identity is configuration, not a hard-coded
// literal at the call sites.
type Config struct {
	// ProjectID identifies the Sanity project.
	ProjectID string `toml:"project_id"`

	// Dataset is the dataset within the project.
	Dataset string `toml:"dataset"`

	// APIVersion is the dated API version string.
	APIVersion string `toml:"api_version"`

	// FetchTimeoutSeconds bounds a single image download.
	FetchTimeoutSeconds int `toml:"fetch_timeout_seconds"`

	// FetchRatePerSecond is the sustained image request rate.
	FetchRatePerSecond float64 `toml:"fetch_rate_per_second"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ProjectID:           "ye1wdgkp",
		Dataset:             "production",
		APIVersion:          "2024-01-01",
		FetchTimeoutSeconds: 30,
		FetchRatePerSecond:  4.0,
	}
}

// DefaultPath returns the standard config file location,
// ~/.eventsync/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".eventsync", "config.toml"), nil
}

// Load reads the config file at path, filling unset keys from Default.
// A missing file is not an error: the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
