package services

import (
	"context"
	"io"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
)

// mockDecoder returns a fixed payload.
type mockDecoder struct {
	payload *domain.RawPayload
	err     error
}

func (m *mockDecoder) Decode(_ context.Context, _ io.Reader) (*domain.RawPayload, error) {
	return m.payload, m.err
}

// mockNormaliser returns a fixed report and records its input.
type mockNormaliser struct {
	report *domain.Report
	err    error
	got    *domain.RawPayload
}

func (m *mockNormaliser) Normalise(_ context.Context, payload *domain.RawPayload) (*domain.Report, error) {
	m.got = payload
	return m.report, m.err
}

// mockPresenter renders a fixed prefix followed by the itinerary ids.
type mockPresenter struct {
	name string
	cfg  map[string]any
	err  error
}

func (m *mockPresenter) Name() string {
	return m.name
}

func (m *mockPresenter) Render(_ context.Context, its []domain.Itinerary) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := m.name + ":"
	for _, it := range its {
		out += it.ID
	}
	return []byte(out), nil
}

// mockFactory builds mockPresenters for known names.
type mockFactory struct {
	names  []string
	err    error
	render error
	built  []*mockPresenter
}

func (m *mockFactory) Build(name string, cfg map[string]any) (driven.Presenter, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, n := range m.names {
		if n == name {
			p := &mockPresenter{name: name, cfg: cfg, err: m.render}
			m.built = append(m.built, p)
			return p, nil
		}
	}
	return nil, domain.ErrUnsupportedFormat
}

func (m *mockFactory) Names() []string {
	return m.names
}

// mockCompressor records the bound it was called with.
type mockCompressor struct {
	gotMax int
}

func (m *mockCompressor) Compress(its []domain.Itinerary, maxCount int) []domain.CompressedItinerary {
	m.gotMax = maxCount
	out := make([]domain.CompressedItinerary, 0, len(its))
	for i := 0; i < len(its) && i < maxCount; i++ {
		out = append(out, domain.CompressedItinerary{PriceUSD: its[i].PriceUSD})
	}
	return out
}

// mockConfigStore is a map-backed ConfigStore.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "" }
