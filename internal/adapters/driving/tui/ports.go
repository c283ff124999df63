// Package tui provides an interactive terminal browser for normalised
// itineraries. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driving"
)

// Ports aggregates what the TUI needs.
type Ports struct {
	// Flight renders and selects itineraries.
	Flight driving.FlightService

	// Report is the normalised payload being browsed.
	Report *domain.Report
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Flight == nil {
		return ErrMissingFlightService
	}
	if p.Report == nil {
		return ErrMissingReport
	}
	return nil
}
