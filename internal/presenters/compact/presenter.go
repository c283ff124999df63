package compact

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
)

// Presenter names.
const (
	NameJSON = "compact"
	NameYAML = "compact-yaml"
)

// Encoding selects how compressed itineraries are serialised.
type Encoding int

const (
	// EncodingJSON writes indented JSON.
	EncodingJSON Encoding = iota

	// EncodingYAML writes YAML, which is shorter in prompts.
	EncodingYAML
)

// Ensure Presenter implements the interface.
var _ driven.Presenter = (*Presenter)(nil)

// Presenter compresses and serialises itineraries.
type Presenter struct {
	maxResults int
	encoding   Encoding
}

// Option configures the compact presenter.
type Option func(*Presenter)

// WithMaxResults sets how many itineraries are kept.
func WithMaxResults(n int) Option {
	return func(p *Presenter) {
		if n > 0 {
			p.maxResults = n
		}
	}
}

// WithEncoding sets the serialisation.
func WithEncoding(e Encoding) Option {
	return func(p *Presenter) {
		p.encoding = e
	}
}

// New creates a new compact presenter.
func New(opts ...Option) *Presenter {
	p := &Presenter{
		maxResults: DefaultMaxResults,
		encoding:   EncodingJSON,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the presenter name.
func (p *Presenter) Name() string {
	if p.encoding == EncodingYAML {
		return NameYAML
	}
	return NameJSON
}

// MaxResults returns the configured bound.
func (p *Presenter) MaxResults() int {
	return p.maxResults
}

// Render compresses up to MaxResults itineraries and serialises them.
func (p *Presenter) Render(_ context.Context, itineraries []domain.Itinerary) ([]byte, error) {
	return Encode(Compress(itineraries, p.maxResults), p.encoding)
}

// Encode serialises compressed itineraries.
func Encode(items []domain.CompressedItinerary, encoding Encoding) ([]byte, error) {
	switch encoding {
	case EncodingYAML:
		data, err := yaml.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	case EncodingJSON:
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: encoding %d", domain.ErrUnsupportedFormat, encoding)
	}
}
