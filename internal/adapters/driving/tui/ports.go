// Package tui provides the interactive GitHub search widget.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driving"
)

// Ports aggregates the services the TUI depends on.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Suggest produces the merged suggestion list.
	Suggest driving.SuggestService

	// Opener opens suggestion pages. Optional.
	Opener driven.URLOpener
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(suggest driving.SuggestService, opener driven.URLOpener) *Ports {
	return &Ports{
		Suggest: suggest,
		Opener:  opener,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Suggest == nil {
		return ErrMissingSuggestService
	}
	return nil
}
