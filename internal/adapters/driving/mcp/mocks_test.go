package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// mockFlightService is a mock implementation of driving.FlightService.
type mockFlightService struct {
	report    *domain.Report
	err       error
	renderErr error

	gotFormat string
	gotConfig map[string]any
	gotInput  string
}

func (m *mockFlightService) Load(_ context.Context, r io.Reader) (*domain.Report, error) {
	data, _ := io.ReadAll(r)
	m.gotInput = string(data)
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockFlightService) Render(ctx context.Context, format string, its []domain.Itinerary) ([]byte, error) {
	return m.RenderWith(ctx, format, nil, its)
}

func (m *mockFlightService) RenderWith(
	_ context.Context,
	format string,
	cfg map[string]any,
	its []domain.Itinerary,
) ([]byte, error) {
	m.gotFormat = format
	m.gotConfig = cfg
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
	return []string{"compact", "json", "text"}
}

func (m *mockFlightService) Describe(it domain.Itinerary) string {
	return "Price: $" + it.PriceUSD.StringFixed(2)
}

func (m *mockFlightService) Compress(_ []domain.Itinerary, _ int) []domain.CompressedItinerary {
	return nil
}

func (m *mockFlightService) Cheapest(its []domain.Itinerary) (domain.Itinerary, bool) {
	if len(its) == 0 {
		return domain.Itinerary{}, false
	}
	best := its[0]
	for _, it := range its[1:] {
		if it.PriceUSD.LessThan(best.PriceUSD) {
			best = it
		}
	}
	return best, true
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
}

func (m *mockSettingsService) Get() domain.Settings {
	return m.settings
}

func (m *mockSettingsService) SetMaxResults(n int) error {
	m.settings.MaxResults = n
	return nil
}

func (m *mockSettingsService) SetOutputFormat(format string) error {
	m.settings.OutputFormat = format
	return nil
}
