package content

import "errors"

// Validation errors beyond parse failure (see formatting.ErrParseFailed).
var (
	ErrMissingField    = errors.New("generated content missing required field")
	ErrUnsupportedKind = errors.New("unsupported content kind")
)
