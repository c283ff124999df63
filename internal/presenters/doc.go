// Package presenters builds the output formats for normalised itineraries.
//
// Each presenter is registered by name with a builder that accepts
// generic config parsed from the user's config file or CLI flags.
package presenters
