package driven

import (
	"context"

	"github.com/eventbyen/eventsync-cli/internal/core/domain"
)

// ContentStore is the remote store holding event documents and image assets.
type ContentStore interface {
	// Mutate sends the mutations as one wire call. Each mutation is
	// applied independently (atomic per item), but a non-success response
	// aborts the whole request. The result counts create vs update
	// outcomes and is only available on success.
	Mutate(ctx context.Context, mutations []domain.Mutation) (*domain.MutateResult, error)

	// QueryCandidates returns the events still holding an external image
	// URL, projected to id, title and imageUrl.
	QueryCandidates(ctx context.Context) ([]domain.ImageCandidate, error)

	// UploadAsset stores raw image bytes under the suggested filename and
	// declared content type, returning the new asset's identifier.
	UploadAsset(ctx context.Context, data []byte, mimeType, filename string) (string, error)
}
