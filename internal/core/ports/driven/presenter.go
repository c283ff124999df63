package driven

import (
	"context"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// Presenter renders normalised itineraries for one kind of consumer.
type Presenter interface {
	// Name returns the presenter name used for selection and configuration.
	Name() string

	// Render writes itineraries in the presenter's format.
	Render(ctx context.Context, itineraries []domain.Itinerary) ([]byte, error)
}

// PresenterFactory builds presenters by name.
type PresenterFactory interface {
	// Build creates the named presenter with presenter-specific config.
	Build(name string, cfg map[string]any) (Presenter, error)

	// Names returns all registered presenter names.
	Names() []string
}

// Compressor reduces itineraries to their prompt-sized form.
type Compressor interface {
	// Compress keeps the first maxCount itineraries in input order.
	Compress(itineraries []domain.Itinerary, maxCount int) []domain.CompressedItinerary
}
