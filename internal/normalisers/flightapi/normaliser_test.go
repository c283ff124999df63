package flightapi

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/fixtures"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestNormalise_Success(t *testing.T) {
	report, err := New().Normalise(context.Background(), fixtures.Payload())
	require.NoError(t, err)
	require.NotNil(t, report)

	if diff := cmp.Diff(fixtures.Itineraries(), report.Itineraries); diff != "" {
		t.Errorf("itineraries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalise_ReportsOutcomes(t *testing.T) {
	report, err := New().Normalise(context.Background(), fixtures.Payload())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Filtered)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 4)

	statuses := make([]domain.OutcomeStatus, len(report.Outcomes))
	for i, o := range report.Outcomes {
		assert.Equal(t, i, o.Index)
		statuses[i] = o.Status
	}
	assert.Equal(t, []domain.OutcomeStatus{
		domain.OutcomeKept,
		domain.OutcomeKept,
		domain.OutcomeNotRoundTrip,
		domain.OutcomeFailed,
	}, statuses)

	assert.Equal(t, "has 1 legs, want 2", report.Outcomes[2].Reason)
	assert.ErrorIs(t, report.Outcomes[3].Err, domain.ErrMissingReference)
	assert.Contains(t, report.Outcomes[3].Reason, `missing leg reference "L9"`)
}

func TestNormalise_Deterministic(t *testing.T) {
	first, err := New().Normalise(context.Background(), fixtures.Payload())
	require.NoError(t, err)
	second, err := New().Normalise(context.Background(), fixtures.Payload())
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestNormalise_RoundTripFilter(t *testing.T) {
	for _, legs := range [][]domain.ID{{"L1"}, {"L1", "L2", "L3"}, {}} {
		payload := fixtures.Payload()
		payload.Itineraries = []domain.RawItinerary{{
			ID:             "X",
			LegIDs:         legs,
			PricingOptions: []domain.PricingOption{{Price: domain.Price{Amount: decimal.NewNullDecimal(decimal.NewFromInt(1))}}},
		}}

		report, err := New().Normalise(context.Background(), payload)
		require.NoError(t, err)
		assert.Empty(t, report.Itineraries, "legs %v", legs)
		assert.Equal(t, 1, report.Filtered)
		assert.Equal(t, 0, report.Failed)
	}
}

func TestNormalise_DirectnessInvariant(t *testing.T) {
	report, err := New().Normalise(context.Background(), fixtures.Payload())
	require.NoError(t, err)

	for _, it := range report.Itineraries {
		for _, leg := range []domain.Leg{it.Outbound, it.Return} {
			assert.Equal(t, len(leg.Segments) == 1, leg.IsDirect)
		}
	}
	assert.False(t, report.Itineraries[1].Outbound.IsDirect)
}

// The first pricing option is used even when a later one is cheaper.
func TestNormalise_UsesFirstPricingOption(t *testing.T) {
	report, err := New().Normalise(context.Background(), fixtures.Payload())
	require.NoError(t, err)

	assert.Equal(t, "387.20", report.Itineraries[1].PriceUSD.StringFixed(2))
}

func TestNormalise_ReferenceIntegrity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.RawPayload)
		kind   domain.RefKind
	}{
		{
			name:   "segment carrier",
			mutate: func(p *domain.RawPayload) { p.Segments[0].MarketingCarrierID = "-1" },
			kind:   domain.RefCarrier,
		},
		{
			name:   "leg origin place",
			mutate: func(p *domain.RawPayload) { p.Legs[0].OriginPlaceID = "1" },
			kind:   domain.RefPlace,
		},
		{
			name:   "segment destination place",
			mutate: func(p *domain.RawPayload) { p.Segments[1].DestinationPlaceID = "1" },
			kind:   domain.RefPlace,
		},
		{
			name:   "leg segment",
			mutate: func(p *domain.RawPayload) { p.Legs[1].SegmentIDs = []domain.ID{"S404"} },
			kind:   domain.RefSegment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := fixtures.Payload()
			payload.Itineraries = payload.Itineraries[:1]
			tt.mutate(payload)

			report, err := New().Normalise(context.Background(), payload)
			require.NoError(t, err)
			assert.Empty(t, report.Itineraries)
			assert.Equal(t, 1, report.Failed)

			var missing *domain.MissingReferenceError
			require.ErrorAs(t, report.Outcomes[0].Err, &missing)
			assert.Equal(t, tt.kind, missing.Kind)
		})
	}
}

func TestNormalise_InvalidTimestamp(t *testing.T) {
	payload := fixtures.Payload()
	payload.Segments[0].Arrival = "soon"

	report, err := New().Normalise(context.Background(), payload)
	require.NoError(t, err)
	assert.Len(t, report.Itineraries, 1)
	assert.Equal(t, 2, report.Failed)
	assert.ErrorIs(t, report.Outcomes[0].Err, domain.ErrInvalidTimestamp)
}

func TestNormalise_NoPricingOptions(t *testing.T) {
	payload := fixtures.Payload()
	payload.Itineraries[0].PricingOptions = nil

	report, err := New().Normalise(context.Background(), payload)
	require.NoError(t, err)
	assert.ErrorIs(t, report.Outcomes[0].Err, domain.ErrNoPricingOptions)
}

func TestNormalise_MissingAmount(t *testing.T) {
	for _, option := range []string{`{"price": {}}`, `{"price": {"amount": null}}`, `{}`} {
		var pricing domain.PricingOption
		require.NoError(t, json.Unmarshal([]byte(option), &pricing))

		payload := fixtures.Payload()
		payload.Itineraries[0].PricingOptions = []domain.PricingOption{pricing}

		report, err := New().Normalise(context.Background(), payload)
		require.NoError(t, err)

		assert.Equal(t, domain.OutcomeFailed, report.Outcomes[0].Status, option)
		assert.ErrorIs(t, report.Outcomes[0].Err, domain.ErrMissingPrice)
		assert.Equal(t, 2, report.Failed)
		require.Len(t, report.Itineraries, 1)
		assert.Equal(t, "I2", report.Itineraries[0].ID)
	}
}

// A zero fare is a real price and is kept.
func TestNormalise_ZeroAmountKept(t *testing.T) {
	payload := fixtures.Payload()
	payload.Itineraries[0].PricingOptions = []domain.PricingOption{
		{Price: domain.Price{Amount: decimal.NewNullDecimal(decimal.Zero)}},
	}

	report, err := New().Normalise(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, report.Itineraries, 2)
	assert.True(t, report.Itineraries[0].PriceUSD.IsZero())
}

func TestNormalise_NumericFlightNumber(t *testing.T) {
	var payload domain.RawPayload
	data := strings.Replace(fixtures.PayloadJSON, `"marketing_flight_number": "123"`, `"marketing_flight_number": 123`, 1)
	require.NoError(t, json.Unmarshal([]byte(data), &payload))

	report, err := New().Normalise(context.Background(), &payload)
	require.NoError(t, err)
	require.Len(t, report.Itineraries, 2)
	assert.Equal(t, "123", report.Itineraries[0].Outbound.Segments[0].FlightNumber)
}

func TestNormalise_NilPayload(t *testing.T) {
	report, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, report)
}

func TestNormalise_EmptyPayload(t *testing.T) {
	report, err := New().Normalise(context.Background(), &domain.RawPayload{})
	require.NoError(t, err)
	assert.Empty(t, report.Itineraries)
	assert.Empty(t, report.Outcomes)
}

func TestNormalise_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Normalise(ctx, fixtures.Payload())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestItineraryID(t *testing.T) {
	withID := &domain.RawItinerary{ID: "I1", LegIDs: []domain.ID{"L1", "L2"}}
	assert.Equal(t, "I1", itineraryID(withID))

	a := itineraryID(&domain.RawItinerary{LegIDs: []domain.ID{"L1", "L2"}})
	b := itineraryID(&domain.RawItinerary{LegIDs: []domain.ID{"L1", "L2"}})
	c := itineraryID(&domain.RawItinerary{LegIDs: []domain.ID{"L2", "L1"}})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 36)
}

func TestNormaliseItinerary_RejectsOneWay(t *testing.T) {
	res := NewResolver(fixtures.Payload())
	_, err := NormaliseItinerary(res, &domain.RawItinerary{LegIDs: []domain.ID{"L1"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
