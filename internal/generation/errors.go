package generation

import (
	"errors"
	"fmt"
)

// ErrMissingCredential indicates no bearer token is configured for the
// generation service. This is fatal for the request and never retried.
var ErrMissingCredential = errors.New("generation credential is not configured")

// UpstreamError reports a non-success response from the generation service,
// carrying the HTTP status and response body for diagnostics.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation service error: %d %s", e.Status, e.Body)
}
