package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// FlightService turns flight-search payloads into itineraries.
type FlightService interface {
	// Load decodes and normalises a payload.
	Load(ctx context.Context, r io.Reader) (*domain.Report, error)

	// Render formats itineraries with the named presenter.
	Render(ctx context.Context, format string, itineraries []domain.Itinerary) ([]byte, error)

	// RenderWith formats itineraries with the named presenter built from cfg,
	// merged over the service's configured values for that presenter.
	RenderWith(ctx context.Context, format string, cfg map[string]any, itineraries []domain.Itinerary) ([]byte, error)

	// Formats returns the available presenter names.
	Formats() []string

	// Describe returns the human-readable text block for one itinerary.
	Describe(itinerary domain.Itinerary) string

	// Compress returns at most maxCount itineraries in prompt form.
	Compress(itineraries []domain.Itinerary, maxCount int) []domain.CompressedItinerary

	// Cheapest returns the lowest-priced itinerary, or false when there is none.
	Cheapest(itineraries []domain.Itinerary) (domain.Itinerary, bool)
}
