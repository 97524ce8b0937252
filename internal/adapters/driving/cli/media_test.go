package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventbyen/eventsync-cli/internal/core/ports/driving"
)

// mockMigrator implements driving.MediaMigrator for testing.
type mockMigrator struct {
	summary *driving.MigrationSummary
	err     error
}

func (m *mockMigrator) Migrate(_ context.Context) (*driving.MigrationSummary, error) {
	return m.summary, m.err
}

func setupMediaTest(mig driving.MediaMigrator, err error) func() {
	old := newMediaMigrator
	newMediaMigrator = func(_ context.Context, _ string) (driving.MediaMigrator, error) {
		return mig, err
	}
	return func() {
		newMediaMigrator = old
	}
}

func TestMigrateImagesCmd_Use(t *testing.T) {
	assert.Equal(t, "migrate-images <token>", migrateImagesCmd.Use)
}

func TestMigrateImagesCmd_RequiresToken(t *testing.T) {
	_, err := execute("migrate-images")

	assert.Error(t, err)
}

func TestMigrateImagesCmd_PrintsSummary(t *testing.T) {
	cleanup := setupMediaTest(&mockMigrator{
		summary: &driving.MigrationSummary{
			Migrated: 2,
			Failed:   1,
			Results: []driving.ItemResult{
				{DocumentID: "imported-a", AssetID: "image-1"},
				{DocumentID: "imported-b", Err: "connection refused"},
				{DocumentID: "imported-c", AssetID: "image-2"},
			},
		},
	}, nil)
	defer cleanup()

	out, err := execute("migrate-images", "token-123")

	// Per-item failures never fail the command.
	assert.NoError(t, err)
	assert.Contains(t, out, "ok   imported-a -> image-1")
	assert.Contains(t, out, "FAIL imported-b: connection refused")
	assert.Contains(t, out, "Done: 2 migrated, 1 failed.")
}

func TestMigrateImagesCmd_QueryErrorFails(t *testing.T) {
	cleanup := setupMediaTest(&mockMigrator{
		err: errors.New("sanity: API error 500: boom"),
	}, nil)
	defer cleanup()

	_, err := execute("migrate-images", "token-123")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrate images")
}
