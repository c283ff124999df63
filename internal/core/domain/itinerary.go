package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Priced is implemented by anything that can be ranked by price.
type Priced interface {
	Price() decimal.Decimal
}

// Segment is a fully resolved marketed flight.
type Segment struct {
	SegmentID     ID        `json:"segment_id"`
	Airline       string    `json:"airline"`
	AirlineCode   string    `json:"airline_code"`
	FlightNumber  string    `json:"flight_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Duration      int       `json:"duration"`
}

// Leg is a fully resolved directional portion of travel.
type Leg struct {
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Duration      int       `json:"duration"`
	Segments      []Segment `json:"segments"`
	IsDirect      bool      `json:"is_direct"`
}

// NewLeg builds a Leg and derives IsDirect from the segment count.
func NewLeg(origin, destination string, departure, arrival time.Time, duration int, segments []Segment) Leg {
	return Leg{
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      duration,
		Segments:      segments,
		IsDirect:      len(segments) == 1,
	}
}

// Itinerary is a fully resolved, priced round trip.
// ID identifies the itinerary in outcomes and tables but is not part of
// the JSON form.
type Itinerary struct {
	ID       string          `json:"-"`
	PriceUSD decimal.Decimal `json:"price_usd"`
	Outbound Leg             `json:"outbound"`
	Return   Leg             `json:"return"`
}

// Price implements Priced.
func (i Itinerary) Price() decimal.Decimal {
	return i.PriceUSD
}

// MarshalJSON writes price_usd as a JSON number.
func (i Itinerary) MarshalJSON() ([]byte, error) {
	type fields Itinerary
	return json.Marshal(struct {
		PriceUSD json.RawMessage `json:"price_usd"`
		fields
	}{jsonNumber(i.PriceUSD), fields(i)})
}

// jsonNumber renders d as an exact JSON number literal.
func jsonNumber(d decimal.Decimal) json.RawMessage {
	return json.RawMessage(d.String())
}
