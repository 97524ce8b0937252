// Package fetch downloads externally hosted images over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/eventbyen/eventsync-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout bounds a single image download.
	DefaultTimeout = 30 * time.Second

	// DefaultRatePerSecond is the sustained request rate against image
	// hosts. Conservative: image CDNs throttle scrapers aggressively.
	DefaultRatePerSecond = 4.0

	// defaultBurst is the token bucket burst size.
	defaultBurst = 4

	// userAgent matches what the image hosts expect from a browser;
	// several CDNs reject requests without one.
	userAgent = "Mozilla/5.0"
)

// Ensure Fetcher implements the interface.
var _ driven.ImageFetcher = (*Fetcher)(nil)

// Fetcher downloads image bytes with a bounded timeout and a token
// bucket rate limiter.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a fetcher with the given timeout and sustained rate.
// Zero values fall back to the defaults.
func New(timeout time.Duration, ratePerSecond float64) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if ratePerSecond <= 0 {
		ratePerSecond = DefaultRatePerSecond
	}

	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), defaultBurst),
	}
}

// Fetch downloads the resource at url and returns its bytes.
// Non-success statuses are errors; the caller isolates them per item.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}
