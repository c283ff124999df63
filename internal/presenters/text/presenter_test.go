package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/farescope/internal/fixtures"
)

func TestName(t *testing.T) {
	assert.Equal(t, "text", New().Name())
}

func TestFormat_ConnectingItinerary(t *testing.T) {
	got := Format(fixtures.Itineraries()[1])

	want := `Price: $387.20

Outbound Flight:
- From JFK to LAX
- Departure: 2024-05-01 07:00 AM
- Arrival: 2024-05-01 12:30 PM
- Duration: 510 minutes
- Direct Flight: No
- Segments:
  - United Airlines UA100: JFK → ORD, Dep: 07:00 AM, Arr: 08:45 AM, Duration: 165 min
  - United Airlines UA200: ORD → LAX, Dep: 10:00 AM, Arr: 12:30 PM, Duration: 270 min

Return Flight:
- From LAX to JFK
- Departure: 2024-05-08 03:15 PM
- Arrival: 2024-05-08 11:40 PM
- Duration: 325 minutes
- Direct Flight: Yes
- Segments:
  - United Airlines UA300: LAX → JFK, Dep: 03:15 PM, Arr: 11:40 PM, Duration: 325 min`

	assert.Equal(t, want, got)
}

func TestFormat_PriceAlwaysTwoDecimals(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{price: "412.5", want: "Price: $412.50"},
		{price: "100", want: "Price: $100.00"},
		{price: "99.999", want: "Price: $100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			it := fixtures.Itineraries()[0]
			it.PriceUSD = fixtures.Priced("", tt.price).PriceUSD
			assert.True(t, strings.HasPrefix(Format(it), tt.want+"\n"))
		})
	}
}

func TestFormatAll(t *testing.T) {
	its := fixtures.Itineraries()
	out := FormatAll(its)

	require.Len(t, out, 2)
	assert.True(t, strings.HasPrefix(out[0], "Price: $412.50"))
	assert.True(t, strings.HasPrefix(out[1], "Price: $387.20"))
	assert.Contains(t, out[0], "- Direct Flight: Yes")
}

func TestFormatAll_Empty(t *testing.T) {
	assert.Empty(t, FormatAll(nil))
}

func TestRender_Separator(t *testing.T) {
	its := fixtures.Itineraries()

	out, err := New(WithSeparator("\n---\n")).Render(context.Background(), its)
	require.NoError(t, err)
	assert.Equal(t, Format(its[0])+"\n---\n"+Format(its[1]), string(out))
}
