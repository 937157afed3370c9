package pipeline

import (
	"errors"
	"net/http"

	"github.com/atelier-studio/atelier/internal/content"
	"github.com/atelier-studio/atelier/internal/generation"
	"github.com/atelier-studio/atelier/pkg/formatting"
)

// MapHTTPStatus maps pipeline stage errors to HTTP status codes.
// Upstream failures and unusable generated output surface as bad gateway;
// a missing credential is a server misconfiguration.
func MapHTTPStatus(err error) int {
	var upstream *generation.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}
	if errors.Is(err, formatting.ErrParseFailed) || errors.Is(err, content.ErrMissingField) {
		return http.StatusBadGateway
	}
	if errors.Is(err, generation.ErrMissingCredential) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
