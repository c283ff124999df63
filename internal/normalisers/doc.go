// Package normalisers holds implementations of the driven.Normaliser port.
// Each subpackage understands one upstream flight-search payload shape and
// turns it into round-trip itineraries.
package normalisers
