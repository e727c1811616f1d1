package mcp

import (
	"github.com/custodia-labs/ghsuggest/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Suggest produces merged suggestion lists.
	Suggest driving.SuggestService

	// Settings exposes the persisted configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Suggest == nil {
		return ErrMissingSuggestService
	}
	return nil
}
