package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
	"github.com/custodia-labs/farescope/internal/core/ports/driving"
)

// Ensure FlightService implements the interface.
var _ driving.FlightService = (*FlightService)(nil)

// describeFormat is the presenter used by Describe.
const describeFormat = "text"

// FlightService runs payloads through decode, normalise and present.
type FlightService struct {
	decoder    driven.PayloadDecoder
	normaliser driven.Normaliser
	presenters driven.PresenterFactory
	compressor driven.Compressor

	// presenterConfig holds per-presenter config passed to the factory.
	presenterConfig map[string]map[string]any
}

// FlightOption configures a FlightService.
type FlightOption func(*FlightService)

// WithPresenterConfig sets the config passed when building a presenter.
func WithPresenterConfig(name string, cfg map[string]any) FlightOption {
	return func(s *FlightService) {
		s.presenterConfig[name] = cfg
	}
}

// NewFlightService creates a new flight service.
func NewFlightService(
	decoder driven.PayloadDecoder,
	normaliser driven.Normaliser,
	presenters driven.PresenterFactory,
	compressor driven.Compressor,
	opts ...FlightOption,
) *FlightService {
	s := &FlightService{
		decoder:         decoder,
		normaliser:      normaliser,
		presenters:      presenters,
		compressor:      compressor,
		presenterConfig: make(map[string]map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load decodes and normalises a payload.
func (s *FlightService) Load(ctx context.Context, r io.Reader) (*domain.Report, error) {
	payload, err := s.decoder.Decode(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	report, err := s.normaliser.Normalise(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("normalise payload: %w", err)
	}
	return report, nil
}

// Render formats itineraries with the named presenter.
func (s *FlightService) Render(ctx context.Context, format string, itineraries []domain.Itinerary) ([]byte, error) {
	return s.RenderWith(ctx, format, nil, itineraries)
}

// RenderWith formats itineraries with a presenter built from cfg layered
// over the configured values for format.
func (s *FlightService) RenderWith(
	ctx context.Context,
	format string,
	cfg map[string]any,
	itineraries []domain.Itinerary,
) ([]byte, error) {
	merged := make(map[string]any, len(s.presenterConfig[format])+len(cfg))
	for k, v := range s.presenterConfig[format] {
		merged[k] = v
	}
	for k, v := range cfg {
		merged[k] = v
	}

	presenter, err := s.presenters.Build(format, merged)
	if err != nil {
		return nil, err
	}

	out, err := presenter.Render(ctx, itineraries)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return out, nil
}

// Formats returns the available presenter names.
func (s *FlightService) Formats() []string {
	return s.presenters.Names()
}

// Describe returns the text block for one itinerary.
// It falls back to an empty string if the text presenter is unavailable.
func (s *FlightService) Describe(itinerary domain.Itinerary) string {
	out, err := s.Render(context.Background(), describeFormat, []domain.Itinerary{itinerary})
	if err != nil {
		return ""
	}
	return string(out)
}

// Compress returns at most maxCount itineraries in prompt form.
func (s *FlightService) Compress(itineraries []domain.Itinerary, maxCount int) []domain.CompressedItinerary {
	return s.compressor.Compress(itineraries, maxCount)
}

// Cheapest returns the lowest-priced itinerary.
func (s *FlightService) Cheapest(itineraries []domain.Itinerary) (domain.Itinerary, bool) {
	return Cheapest(itineraries)
}
