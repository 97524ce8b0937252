package driven

import "context"

// ImageFetcher downloads externally hosted image bytes.
type ImageFetcher interface {
	// Fetch retrieves the resource at url within a bounded timeout.
	// Non-success responses and transport failures are returned as
	// errors for the caller to isolate per item.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
