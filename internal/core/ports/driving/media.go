package driving

import "context"

// MediaMigrator re-hosts externally referenced event images as store assets.
type MediaMigrator interface {
	// Migrate processes every candidate event in store order. One item's
	// failure never stops the run; Migrate only returns an error when the
	// candidate query itself fails or the context is cancelled.
	Migrate(ctx context.Context) (*MigrationSummary, error)
}

// MigrationSummary aggregates per-item outcomes of one migration run.
type MigrationSummary struct {
	// Migrated counts events whose image was re-hosted and patched.
	Migrated int

	// Failed counts events that failed at any stage. Failed events keep
	// their external image URL and are retried wholesale on the next run.
	Failed int

	// Results holds one entry per candidate, in processing order.
	Results []ItemResult
}

// ItemResult is the terminal state of one candidate event.
type ItemResult struct {
	// DocumentID identifies the owning event document.
	DocumentID string

	// Title is the event title, used as the uploaded image's alt text.
	Title string

	// AssetID is the uploaded asset's identifier when migration succeeded.
	AssetID string

	// Err holds the failure text when the item failed; empty on success.
	Err string
}

// Migrated reports whether the item reached the migrated terminal state.
func (r ItemResult) Migrated() bool {
	return r.Err == ""
}
