package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// PayloadDecoder reads a denormalised flight-search response.
type PayloadDecoder interface {
	// Decode parses a payload from r.
	// Malformed input returns an error wrapping domain.ErrInvalidInput.
	Decode(ctx context.Context, r io.Reader) (*domain.RawPayload, error)
}
