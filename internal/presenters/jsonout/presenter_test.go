package jsonout

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/farescope/internal/fixtures"
)

func TestName(t *testing.T) {
	assert.Equal(t, "json", New("").Name())
}

func TestRender_Schema(t *testing.T) {
	out, err := New("  ").Render(context.Background(), fixtures.Itineraries())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)

	outbound := decoded[1]["outbound"].(map[string]any)
	assert.Equal(t, "JFK", outbound["origin"])
	assert.Equal(t, "LAX", outbound["destination"])
	assert.Equal(t, "2024-05-01T07:00:00Z", outbound["departure_time"])
	assert.Equal(t, false, outbound["is_direct"])
	assert.EqualValues(t, 510, outbound["duration"])

	segments := outbound["segments"].([]any)
	require.Len(t, segments, 2)
	first := segments[0].(map[string]any)
	for _, key := range []string{
		"segment_id", "airline", "airline_code", "flight_number",
		"origin", "destination", "departure_time", "arrival_time", "duration",
	} {
		assert.Contains(t, first, key)
	}
	assert.Equal(t, "United Airlines", first["airline"])
}

func TestRender_Nil(t *testing.T) {
	out, err := New("").Render(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
