// Package domain defines the core business entities for farescope.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - RawPayload: The denormalised flight-search response as received
//   - Place, Carrier, RawSegment, RawLeg, RawItinerary: Its cross-referenced tables
//   - Itinerary, Leg, Segment: Fully resolved round-trip records
//   - CompressedItinerary: A lossy, prompt-sized rendering of an Itinerary
//   - Report: Normalisation output with a per-item outcome
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, shopspring/decimal for monetary amounts
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
