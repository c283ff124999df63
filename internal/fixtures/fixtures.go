// Package fixtures provides a small flight-search payload for tests.
//
// The payload has four itineraries: two round trips priced 412.50 and
// 387.20, a one-way itinerary, and a round trip whose return leg does
// not resolve.
package fixtures

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// PayloadJSON is a flightapi round-trip response.
// Places and carriers use numeric ids, as the upstream API does.
const PayloadJSON = `{
  "places": [
    {"id": 1001, "display_code": "JFK"},
    {"id": 1002, "display_code": "LAX"},
    {"id": 1003, "display_code": "ORD"}
  ],
  "carriers": [
    {"id": -32171, "name": "Delta Air Lines", "display_code": "DL"},
    {"id": -31722, "name": "United Airlines", "display_code": "UA"}
  ],
  "segments": [
    {"id": "S1", "marketing_carrier_id": -32171, "marketing_flight_number": "123", "origin_place_id": 1001, "destination_place_id": 1002, "departure": "2024-05-01T08:30:00", "arrival": "2024-05-01T11:45:00", "duration": 375},
    {"id": "S2", "marketing_carrier_id": -32171, "marketing_flight_number": "456", "origin_place_id": 1002, "destination_place_id": 1001, "departure": "2024-05-08T13:00:00", "arrival": "2024-05-08T21:30:00", "duration": 330},
    {"id": "S3", "marketing_carrier_id": -31722, "marketing_flight_number": "100", "origin_place_id": 1001, "destination_place_id": 1003, "departure": "2024-05-01T07:00:00", "arrival": "2024-05-01T08:45:00", "duration": 165},
    {"id": "S4", "marketing_carrier_id": -31722, "marketing_flight_number": "200", "origin_place_id": 1003, "destination_place_id": 1002, "departure": "2024-05-01T10:00:00", "arrival": "2024-05-01T12:30:00", "duration": 270},
    {"id": "S5", "marketing_carrier_id": -31722, "marketing_flight_number": "300", "origin_place_id": 1002, "destination_place_id": 1001, "departure": "2024-05-08T15:15:00", "arrival": "2024-05-08T23:40:00", "duration": 325}
  ],
  "legs": [
    {"id": "L1", "origin_place_id": 1001, "destination_place_id": 1002, "departure": "2024-05-01T08:30:00", "arrival": "2024-05-01T11:45:00", "duration": 375, "segment_ids": ["S1"]},
    {"id": "L2", "origin_place_id": 1002, "destination_place_id": 1001, "departure": "2024-05-08T13:00:00", "arrival": "2024-05-08T21:30:00", "duration": 330, "segment_ids": ["S2"]},
    {"id": "L3", "origin_place_id": 1001, "destination_place_id": 1002, "departure": "2024-05-01T07:00:00", "arrival": "2024-05-01T12:30:00", "duration": 510, "segment_ids": ["S3", "S4"]},
    {"id": "L4", "origin_place_id": 1002, "destination_place_id": 1001, "departure": "2024-05-08T15:15:00", "arrival": "2024-05-08T23:40:00", "duration": 325, "segment_ids": ["S5"]}
  ],
  "itineraries": [
    {"id": "I1", "leg_ids": ["L1", "L2"], "pricing_options": [{"price": {"amount": 412.50}}]},
    {"id": "I2", "leg_ids": ["L3", "L4"], "pricing_options": [{"price": {"amount": 387.20}}, {"price": {"amount": 350.00}}]},
    {"id": "I3", "leg_ids": ["L1"], "pricing_options": [{"price": {"amount": 150.00}}]},
    {"id": "I4", "leg_ids": ["L1", "L9"], "pricing_options": [{"price": {"amount": 99.00}}]}
  ]
}`

// Payload decodes PayloadJSON. It panics on error.
func Payload() *domain.RawPayload {
	var payload domain.RawPayload
	if err := json.Unmarshal([]byte(PayloadJSON), &payload); err != nil {
		panic(err)
	}
	return &payload
}

// Itineraries returns the normalised form of the two valid round trips
// in payload order: I1 (412.50, direct both ways) then I2 (387.20,
// connecting outbound via ORD).
func Itineraries() []domain.Itinerary {
	return []domain.Itinerary{
		{
			ID:       "I1",
			PriceUSD: decimal.RequireFromString("412.50"),
			Outbound: domain.NewLeg("JFK", "LAX", at(5, 1, 8, 30), at(5, 1, 11, 45), 375, []domain.Segment{
				segment("S1", "Delta Air Lines", "DL", "123", "JFK", "LAX", at(5, 1, 8, 30), at(5, 1, 11, 45), 375),
			}),
			Return: domain.NewLeg("LAX", "JFK", at(5, 8, 13, 0), at(5, 8, 21, 30), 330, []domain.Segment{
				segment("S2", "Delta Air Lines", "DL", "456", "LAX", "JFK", at(5, 8, 13, 0), at(5, 8, 21, 30), 330),
			}),
		},
		{
			ID:       "I2",
			PriceUSD: decimal.RequireFromString("387.20"),
			Outbound: domain.NewLeg("JFK", "LAX", at(5, 1, 7, 0), at(5, 1, 12, 30), 510, []domain.Segment{
				segment("S3", "United Airlines", "UA", "100", "JFK", "ORD", at(5, 1, 7, 0), at(5, 1, 8, 45), 165),
				segment("S4", "United Airlines", "UA", "200", "ORD", "LAX", at(5, 1, 10, 0), at(5, 1, 12, 30), 270),
			}),
			Return: domain.NewLeg("LAX", "JFK", at(5, 8, 15, 15), at(5, 8, 23, 40), 325, []domain.Segment{
				segment("S5", "United Airlines", "UA", "300", "LAX", "JFK", at(5, 8, 15, 15), at(5, 8, 23, 40), 325),
			}),
		},
	}
}

// Priced builds an itinerary carrying only an id and a price.
func Priced(id, price string) domain.Itinerary {
	return domain.Itinerary{ID: id, PriceUSD: decimal.RequireFromString(price)}
}

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

func segment(
	id domain.ID,
	airline, code, number, origin, destination string,
	departure, arrival time.Time,
	duration int,
) domain.Segment {
	return domain.Segment{
		SegmentID:     id,
		Airline:       airline,
		AirlineCode:   code,
		FlightNumber:  number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      duration,
	}
}
