package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewLeg_IsDirect(t *testing.T) {
	dep := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	arr := dep.Add(6 * time.Hour)

	tests := []struct {
		name     string
		segments []Segment
		expected bool
	}{
		{name: "no segments", segments: nil, expected: false},
		{name: "one segment", segments: []Segment{{SegmentID: "S1"}}, expected: true},
		{name: "two segments", segments: []Segment{{SegmentID: "S1"}, {SegmentID: "S2"}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := NewLeg("JFK", "LAX", dep, arr, 360, tt.segments)
			assert.Equal(t, tt.expected, leg.IsDirect)
			assert.Equal(t, len(tt.segments) == 1, leg.IsDirect)
			assert.Equal(t, "JFK", leg.Origin)
			assert.Equal(t, "LAX", leg.Destination)
			assert.Equal(t, 360, leg.Duration)
		})
	}
}

func TestRawItinerary_IsRoundTrip(t *testing.T) {
	assert.False(t, RawItinerary{LegIDs: []ID{"L1"}}.IsRoundTrip())
	assert.True(t, RawItinerary{LegIDs: []ID{"L1", "L2"}}.IsRoundTrip())
	assert.False(t, RawItinerary{LegIDs: []ID{"L1", "L2", "L3"}}.IsRoundTrip())
}

func TestPriced(t *testing.T) {
	price := decimal.RequireFromString("387.20")

	var p Priced = Itinerary{PriceUSD: price}
	assert.True(t, price.Equal(p.Price()))

	p = CompressedItinerary{PriceUSD: price}
	assert.True(t, price.Equal(p.Price()))
}

func TestItinerary_MarshalJSON(t *testing.T) {
	it := Itinerary{ID: "I2", PriceUSD: decimal.RequireFromString("387.20")}

	data, err := json.Marshal(it)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 3)
	assert.Equal(t, "387.2", string(decoded["price_usd"]))
	assert.Contains(t, decoded, "outbound")
	assert.Contains(t, decoded, "return")
	assert.NotContains(t, decoded, "id")

	var back Itinerary
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, it.PriceUSD.Equal(back.PriceUSD))
}

func TestCompressedItinerary_NumericPrice(t *testing.T) {
	c := CompressedItinerary{
		PriceUSD: decimal.RequireFromString("412.50"),
		Outbound: CompressedLeg{Route: "JFK → LAX"},
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 412.5, decoded["price_usd"])

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "price_usd: 412.5\n")
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, 412.5, fromYAML["price_usd"])
}
