package driven

import (
	"context"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// Normaliser resolves a raw payload into self-contained itineraries.
type Normaliser interface {
	// Normalise resolves every round-trip itinerary in the payload.
	// Per-itinerary defects are reported in the Report, not returned;
	// the error is reserved for unusable input or cancellation.
	Normalise(ctx context.Context, payload *domain.RawPayload) (*domain.Report, error)
}
