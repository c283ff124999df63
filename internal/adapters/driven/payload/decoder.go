// Package payload decodes flight-search responses into domain.RawPayload.
package payload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
)

// Ensure JSONDecoder implements the interface.
var _ driven.PayloadDecoder = (*JSONDecoder)(nil)

// JSONDecoder reads a single JSON document.
type JSONDecoder struct {
	// Strict rejects fields not present in domain.RawPayload.
	Strict bool
}

// NewJSONDecoder creates a lenient decoder. Upstream responses carry many
// fields (agents, alliances, stop counts) that are ignored.
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode reads the payload from r.
// Empty or malformed input wraps domain.ErrInvalidInput.
func (d *JSONDecoder) Decode(ctx context.Context, r io.Reader) (*domain.RawPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrInvalidInput
	}

	dec := json.NewDecoder(r)
	if d.Strict {
		dec.DisallowUnknownFields()
	}

	var payload domain.RawPayload
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty payload", domain.ErrInvalidInput)
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return &payload, nil
}

// DecodeString decodes a payload held in memory.
func (d *JSONDecoder) DecodeString(ctx context.Context, s string) (*domain.RawPayload, error) {
	return d.Decode(ctx, bytes.NewBufferString(s))
}
