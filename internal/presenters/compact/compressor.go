// Package compact reduces itineraries to a small form for language-model prompts.
//
// Compression is lossy and one-way: airline names, durations and the
// direct flag are dropped.
package compact

import (
	"fmt"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
)

// DefaultMaxResults is the default number of itineraries kept.
const DefaultMaxResults = domain.DefaultMaxResults

const (
	dateTimeLayout = "2006-01-02 15:04"
	clockLayout    = "15:04"
)

// Compress keeps the first maxCount itineraries, in input order, and
// compresses each. It never re-sorts. maxCount <= 0 keeps nothing.
func Compress(itineraries []domain.Itinerary, maxCount int) []domain.CompressedItinerary {
	n := min(max(maxCount, 0), len(itineraries))

	out := make([]domain.CompressedItinerary, n)
	for i := range n {
		out[i] = CompressItinerary(itineraries[i])
	}
	return out
}

// CompressItinerary converts one itinerary.
func CompressItinerary(it domain.Itinerary) domain.CompressedItinerary {
	return domain.CompressedItinerary{
		PriceUSD: it.PriceUSD,
		Outbound: compressLeg(it.Outbound),
		Return:   compressLeg(it.Return),
	}
}

func compressLeg(leg domain.Leg) domain.CompressedLeg {
	segments := make([]string, len(leg.Segments))
	for i, seg := range leg.Segments {
		segments[i] = compressSegment(seg)
	}

	return domain.CompressedLeg{
		Route:     fmt.Sprintf("%s → %s", leg.Origin, leg.Destination),
		Departure: leg.DepartureTime.Format(dateTimeLayout),
		Arrival:   leg.ArrivalTime.Format(dateTimeLayout),
		Segments:  segments,
	}
}

// compressSegment renders e.g. "DL123 JFK→LAX (08:30→11:45)".
func compressSegment(seg domain.Segment) string {
	return fmt.Sprintf("%s%s %s→%s (%s→%s)",
		seg.AirlineCode, seg.FlightNumber,
		seg.Origin, seg.Destination,
		seg.DepartureTime.Format(clockLayout),
		seg.ArrivalTime.Format(clockLayout),
	)
}

// Compressor adapts Compress to the driven.Compressor port.
type Compressor struct{}

// Ensure Compressor implements the interface.
var _ driven.Compressor = Compressor{}

// Compress implements driven.Compressor.
func (Compressor) Compress(itineraries []domain.Itinerary, maxCount int) []domain.CompressedItinerary {
	return Compress(itineraries, maxCount)
}
