package sanity

import (
	"errors"
	"fmt"
)

// APIError represents a non-success response from the Sanity API.
// The remote status code and response body are surfaced as-is; the
// client never interprets remote error schemas beyond that.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sanity: API error %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}
