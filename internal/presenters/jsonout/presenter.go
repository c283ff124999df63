// Package jsonout renders normalised itineraries as JSON.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
)

// Name is the presenter name.
const Name = "json"

// Ensure Presenter implements the interface.
var _ driven.Presenter = (*Presenter)(nil)

// Presenter writes the full normalised schema.
type Presenter struct {
	indent string
}

// New creates a JSON presenter. An empty indent writes compact JSON.
func New(indent string) *Presenter {
	return &Presenter{indent: indent}
}

// Name returns the presenter name.
func (p *Presenter) Name() string {
	return Name
}

// Render marshals itineraries. Nil input renders as an empty array.
func (p *Presenter) Render(_ context.Context, itineraries []domain.Itinerary) ([]byte, error) {
	if itineraries == nil {
		itineraries = []domain.Itinerary{}
	}

	var (
		data []byte
		err  error
	)
	if p.indent == "" {
		data, err = json.Marshal(itineraries)
	} else {
		data, err = json.MarshalIndent(itineraries, "", p.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal itineraries: %w", err)
	}
	return data, nil
}
