package mcp

import (
	"github.com/custodia-labs/farescope/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Flight normalises and renders itineraries.
	Flight driving.FlightService

	// Settings supplies the default compression bound. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Flight == nil {
		return ErrMissingFlightService
	}
	return nil
}
