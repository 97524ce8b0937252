package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/eventbyen/eventsync-cli/internal/core/domain"
	"github.com/eventbyen/eventsync-cli/internal/core/ports/driven"
	"github.com/eventbyen/eventsync-cli/internal/core/ports/driving"
	"github.com/eventbyen/eventsync-cli/internal/logger"
)

// Ensure MediaMigrator implements the interface.
var _ driving.MediaMigrator = (*MediaMigrator)(nil)

// mimeTypes maps image URL extensions to content types. Unrecognized
// extensions fall back to JPEG.
var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

const defaultMIMEType = "image/jpeg"

// MediaMigrator moves externally hosted event images into the content
// store: fetch bytes, upload them as an asset, then patch the owning event
// to reference the asset and drop the external URL in one operation.
type MediaMigrator struct {
	store   driven.ContentStore
	fetcher driven.ImageFetcher
}

// NewMediaMigrator creates a new media migration service.
func NewMediaMigrator(store driven.ContentStore, fetcher driven.ImageFetcher) *MediaMigrator {
	return &MediaMigrator{
		store:   store,
		fetcher: fetcher,
	}
}

// Migrate processes every candidate event, strictly sequentially, in the
// order the store returns them. Items are isolated: a failure at any stage
// records a failed result and the loop moves on. Successfully migrated
// events no longer match the candidate query, so reruns only revisit
// failures.
func (m *MediaMigrator) Migrate(ctx context.Context) (*driving.MigrationSummary, error) {
	candidates, err := m.store.QueryCandidates(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Found %d events with external images", len(candidates))

	summary := &driving.MigrationSummary{}
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		result := m.migrateOne(ctx, candidate)
		if result.Migrated() {
			summary.Migrated++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	logger.Info("Migration complete: %d migrated, %d failed",
		summary.Migrated, summary.Failed)
	return summary, nil
}

// migrateOne runs the fetch, upload, patch sequence for a single candidate.
// Every failure path returns a result carrying the error text; nothing
// propagates past the item.
func (m *MediaMigrator) migrateOne(
	ctx context.Context,
	candidate domain.ImageCandidate,
) driving.ItemResult {
	result := driving.ItemResult{
		DocumentID: candidate.ID,
		Title:      candidate.Title,
	}

	logger.Debug("Fetching %s", candidate.ImageURL)
	data, err := m.fetcher.Fetch(ctx, candidate.ImageURL)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	mimeType := mimeTypeFor(candidate.ImageURL)
	filename := candidate.ID + "." + extensionFor(mimeType)

	logger.Debug("Uploading %s (%d KB)", filename, len(data)/1024)
	assetID, err := m.store.UploadAsset(ctx, data, mimeType, filename)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	patch := domain.Mutation{Patch: &domain.Patch{
		ID: candidate.ID,
		Set: map[string]any{
			"image": domain.NewImage(assetID, candidate.Title),
		},
		Unset: []string{"imageUrl"},
	}}
	if _, err := m.store.Mutate(ctx, []domain.Mutation{patch}); err != nil {
		result.Err = err.Error()
		return result
	}

	result.AssetID = assetID
	return result
}

// mimeTypeFor infers the content type from the URL path's extension.
func mimeTypeFor(rawURL string) string {
	path := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		path = parsed.Path
	}
	path = strings.ToLower(path)

	for ext, mime := range mimeTypes {
		if strings.HasSuffix(path, ext) {
			return mime
		}
	}
	return defaultMIMEType
}

// extensionFor derives the filename extension from the content type,
// using the canonical jpg spelling.
func extensionFor(mimeType string) string {
	ext := strings.TrimPrefix(mimeType, "image/")
	return strings.ReplaceAll(ext, "jpeg", "jpg")
}
