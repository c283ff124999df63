package flightapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
	"github.com/custodia-labs/farescope/internal/logger"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// itineraryNamespace seeds name-based ids for itineraries without one.
var itineraryNamespace = uuid.MustParse("5b3f0c1e-8d4a-4f6e-9a57-2c1d7e0b9f31")

// Normaliser resolves flightapi payloads into round-trip itineraries.
type Normaliser struct{}

// New creates a new flightapi normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise resolves every round-trip itinerary in payload order.
// Itineraries without exactly two legs are filtered; itineraries with
// unresolved references or bad timestamps fail individually. Neither
// aborts the batch, and both are counted in the Report.
func (n *Normaliser) Normalise(ctx context.Context, payload *domain.RawPayload) (*domain.Report, error) {
	if payload == nil {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Normalise")
	defer logger.Timer("normalise")()
	res := NewResolver(payload)
	logger.Debug("indexed %d legs, %d places, %d carriers, %d segments",
		len(payload.Legs), len(payload.Places), len(payload.Carriers), len(payload.Segments))

	report := &domain.Report{
		Itineraries: make([]domain.Itinerary, 0, len(payload.Itineraries)),
		Outcomes:    make([]domain.Outcome, 0, len(payload.Itineraries)),
	}

	for i := range payload.Itineraries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw := &payload.Itineraries[i]
		outcome := domain.Outcome{Index: i, ItineraryID: raw.ID}

		if !raw.IsRoundTrip() {
			outcome.Status = domain.OutcomeNotRoundTrip
			outcome.Reason = fmt.Sprintf("has %d legs, want 2", len(raw.LegIDs))
			report.Filtered++
			report.Outcomes = append(report.Outcomes, outcome)
			logger.Debug("itinerary %d (%s) skipped: %s", i, raw.ID, outcome.Reason)
			continue
		}

		itinerary, err := NormaliseItinerary(res, raw)
		if err != nil {
			outcome.Status = domain.OutcomeFailed
			outcome.Reason = err.Error()
			outcome.Err = err
			report.Failed++
			report.Outcomes = append(report.Outcomes, outcome)
			logger.Warn("itinerary %d (%s) failed: %v", i, raw.ID, err)
			continue
		}

		outcome.Status = domain.OutcomeKept
		report.Itineraries = append(report.Itineraries, itinerary)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	logger.Info("normalised %d of %d itineraries (%d not round trip, %d failed)",
		len(report.Itineraries), len(payload.Itineraries), report.Filtered, report.Failed)

	return report, nil
}

// NormaliseItinerary resolves one round-trip itinerary.
// The price is the first pricing option's amount, not the lowest one.
func NormaliseItinerary(res *Resolver, raw *domain.RawItinerary) (domain.Itinerary, error) {
	if !raw.IsRoundTrip() {
		return domain.Itinerary{}, fmt.Errorf("%w: itinerary %q has %d legs", domain.ErrInvalidInput, raw.ID, len(raw.LegIDs))
	}
	if len(raw.PricingOptions) == 0 {
		return domain.Itinerary{}, fmt.Errorf("itinerary %q: %w", raw.ID, domain.ErrNoPricingOptions)
	}
	amount := raw.PricingOptions[0].Price.Amount
	if !amount.Valid {
		return domain.Itinerary{}, fmt.Errorf("itinerary %q pricing option 0: %w", raw.ID, domain.ErrMissingPrice)
	}

	outbound, err := normaliseLeg(res, raw.LegIDs[0])
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("itinerary %q outbound: %w", raw.ID, err)
	}

	inbound, err := normaliseLeg(res, raw.LegIDs[1])
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("itinerary %q return: %w", raw.ID, err)
	}

	return domain.Itinerary{
		ID:       itineraryID(raw),
		PriceUSD: amount.Decimal,
		Outbound: outbound,
		Return:   inbound,
	}, nil
}

// normaliseLeg resolves a leg and expands its segments in order.
func normaliseLeg(res *Resolver, legID domain.ID) (domain.Leg, error) {
	leg, err := res.Leg(legID)
	if err != nil {
		return domain.Leg{}, err
	}

	origin, err := res.PlaceCode(leg.OriginPlaceID)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("leg %q origin: %w", legID, err)
	}
	destination, err := res.PlaceCode(leg.DestinationPlaceID)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("leg %q destination: %w", legID, err)
	}

	departure, err := parseTimestamp(leg.Departure)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("leg %q departure: %w", legID, err)
	}
	arrival, err := parseTimestamp(leg.Arrival)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("leg %q arrival: %w", legID, err)
	}

	segments := make([]domain.Segment, 0, len(leg.SegmentIDs))
	for _, segmentID := range leg.SegmentIDs {
		segment, err := normaliseSegment(res, segmentID)
		if err != nil {
			return domain.Leg{}, fmt.Errorf("leg %q: %w", legID, err)
		}
		segments = append(segments, segment)
	}

	return domain.NewLeg(origin, destination, departure, arrival, leg.Duration, segments), nil
}

// normaliseSegment resolves a segment's carrier and places.
func normaliseSegment(res *Resolver, segmentID domain.ID) (domain.Segment, error) {
	seg, err := res.Segment(segmentID)
	if err != nil {
		return domain.Segment{}, err
	}

	carrier, err := res.Carrier(seg.MarketingCarrierID)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("segment %q: %w", segmentID, err)
	}
	origin, err := res.PlaceCode(seg.OriginPlaceID)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("segment %q origin: %w", segmentID, err)
	}
	destination, err := res.PlaceCode(seg.DestinationPlaceID)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("segment %q destination: %w", segmentID, err)
	}

	departure, err := parseTimestamp(seg.Departure)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("segment %q departure: %w", segmentID, err)
	}
	arrival, err := parseTimestamp(seg.Arrival)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("segment %q arrival: %w", segmentID, err)
	}

	return domain.Segment{
		SegmentID:     segmentID,
		Airline:       carrier.Name,
		AirlineCode:   carrier.DisplayCode,
		FlightNumber:  seg.MarketingFlightNumber.String(),
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      seg.Duration,
	}, nil
}

// itineraryID returns the upstream id, or a stable id derived from the legs.
func itineraryID(raw *domain.RawItinerary) string {
	if raw.ID != "" {
		return raw.ID.String()
	}
	parts := make([]string, len(raw.LegIDs))
	for i, id := range raw.LegIDs {
		parts[i] = id.String()
	}
	return uuid.NewSHA1(itineraryNamespace, []byte(strings.Join(parts, "|"))).String()
}
