package domain

import "github.com/shopspring/decimal"

// RawPayload is a denormalised flight-search response.
// Its tables reference each other by ID and must be resolved before use.
type RawPayload struct {
	Legs        []RawLeg       `json:"legs"`
	Places      []Place        `json:"places"`
	Carriers    []Carrier      `json:"carriers"`
	Segments    []RawSegment   `json:"segments"`
	Itineraries []RawItinerary `json:"itineraries"`
}

// Place is an airport or city.
type Place struct {
	ID ID `json:"id"`

	// DisplayCode is the IATA-style code (e.g., "JFK").
	DisplayCode string `json:"display_code"`
}

// Carrier is an airline.
type Carrier struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	DisplayCode string `json:"display_code"`
}

// RawSegment is a single marketed flight as it appears in the payload.
type RawSegment struct {
	ID                    ID           `json:"id"`
	MarketingCarrierID    ID           `json:"marketing_carrier_id"`
	MarketingFlightNumber FlightNumber `json:"marketing_flight_number"`
	OriginPlaceID         ID           `json:"origin_place_id"`
	DestinationPlaceID    ID           `json:"destination_place_id"`

	// Departure and Arrival are local ISO-8601 timestamps.
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`

	// Duration is in minutes.
	Duration int `json:"duration"`
}

// RawLeg is one directional portion of travel as it appears in the payload.
type RawLeg struct {
	ID                 ID     `json:"id"`
	OriginPlaceID      ID     `json:"origin_place_id"`
	DestinationPlaceID ID     `json:"destination_place_id"`
	Departure          string `json:"departure"`
	Arrival            string `json:"arrival"`
	Duration           int    `json:"duration"`

	// SegmentIDs is ordered as flown.
	SegmentIDs []ID `json:"segment_ids"`
}

// Price is an offered amount. Amount is invalid when the payload omits it
// or sends null.
type Price struct {
	Amount decimal.NullDecimal `json:"amount"`
}

// PricingOption is one way of buying an itinerary.
type PricingOption struct {
	Price Price `json:"price"`
}

// RawItinerary is a priced combination of legs as it appears in the payload.
type RawItinerary struct {
	ID             ID              `json:"id"`
	PricingOptions []PricingOption `json:"pricing_options"`

	// LegIDs holds outbound then return for a round trip.
	LegIDs []ID `json:"leg_ids"`
}

// IsRoundTrip reports whether the itinerary has exactly two legs.
func (r RawItinerary) IsRoundTrip() bool {
	return len(r.LegIDs) == 2
}
