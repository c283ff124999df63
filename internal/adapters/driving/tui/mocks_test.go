package tui

import (
	"context"
	"errors"
	"io"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/services"
)

// mockFlightService renders predictable strings.
type mockFlightService struct {
	renderErr error
}

func (m *mockFlightService) Load(context.Context, io.Reader) (*domain.Report, error) {
	return nil, errors.New("not used")
}

func (m *mockFlightService) Render(ctx context.Context, format string, its []domain.Itinerary) ([]byte, error) {
	return m.RenderWith(ctx, format, nil, its)
}

func (m *mockFlightService) RenderWith(_ context.Context, format string, _ map[string]any, its []domain.Itinerary) ([]byte, error) {
	if m.renderErr != nil {
		return nil, m.renderErr
	}
	out := format + ":"
	for _, it := range its {
		out += it.ID
	}
	return []byte(out), nil
}

func (m *mockFlightService) Formats() []string {
	return []string{"text", "compact"}
}

func (m *mockFlightService) Describe(it domain.Itinerary) string {
	return "Price: $" + it.PriceUSD.StringFixed(2)
}

func (m *mockFlightService) Compress(its []domain.Itinerary, maxCount int) []domain.CompressedItinerary {
	return nil
}

func (m *mockFlightService) Cheapest(its []domain.Itinerary) (domain.Itinerary, bool) {
	return services.Cheapest(its)
}
