package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent structural defects in input.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingReference indicates an identifier did not resolve.
	// Match with errors.Is; the concrete error is *MissingReferenceError.
	ErrMissingReference = errors.New("missing reference")

	// ErrInvalidTimestamp indicates a departure or arrival could not be parsed.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrNoPricingOptions indicates an itinerary carries no price.
	ErrNoPricingOptions = errors.New("no pricing options")

	// ErrMissingPrice indicates the pricing option used has no amount.
	ErrMissingPrice = errors.New("missing price amount")

	// ErrUnsupportedFormat indicates an unknown output format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// RefKind names a lookup table.
type RefKind string

// Lookup tables.
const (
	RefPlace   RefKind = "place"
	RefCarrier RefKind = "carrier"
	RefSegment RefKind = "segment"
	RefLeg     RefKind = "leg"
)

// MissingReferenceError reports an identifier absent from its table.
type MissingReferenceError struct {
	Kind RefKind
	ID   ID
}

// Error implements error.
func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing %s reference %q", e.Kind, e.ID)
}

// Is matches ErrMissingReference.
func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrMissingReference
}
