// Package flightapi normalises round-trip search responses in the
// flightapi.io / Skyscanner shape: flat tables of legs, places, carriers
// and segments cross-referenced by id from a list of itineraries.
//
// Resolution is explicit. Every lookup goes through Resolver, which reports
// a *domain.MissingReferenceError instead of producing an empty record.
package flightapi
