package tui

import "errors"

// ErrMissingSuggestService is returned when the suggest service is not provided.
var ErrMissingSuggestService = errors.New("tui: suggest service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
