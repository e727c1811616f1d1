package autocomplete

import "errors"

// Error definitions for the autocomplete view.
var (
	// ErrNoSuggestService indicates that no suggest service was provided.
	ErrNoSuggestService = errors.New("suggest service is required")
)
