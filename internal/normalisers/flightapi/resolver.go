package flightapi

import (
	"github.com/custodia-labs/farescope/internal/core/domain"
)

// Resolver indexes a payload's flat tables by id.
// It is built once per payload and is read-only afterwards.
type Resolver struct {
	places   map[domain.ID]domain.Place
	carriers map[domain.ID]domain.Carrier
	segments map[domain.ID]domain.RawSegment
	legs     map[domain.ID]domain.RawLeg
}

// NewResolver builds lookup tables from the payload.
// When an id repeats, the last record wins.
func NewResolver(payload *domain.RawPayload) *Resolver {
	return &Resolver{
		places:   index(payload.Places, func(p domain.Place) domain.ID { return p.ID }),
		carriers: index(payload.Carriers, func(c domain.Carrier) domain.ID { return c.ID }),
		segments: index(payload.Segments, func(s domain.RawSegment) domain.ID { return s.ID }),
		legs:     index(payload.Legs, func(l domain.RawLeg) domain.ID { return l.ID }),
	}
}

// Place resolves a place id.
func (r *Resolver) Place(id domain.ID) (domain.Place, error) {
	return lookup(r.places, domain.RefPlace, id)
}

// Carrier resolves a carrier id.
func (r *Resolver) Carrier(id domain.ID) (domain.Carrier, error) {
	return lookup(r.carriers, domain.RefCarrier, id)
}

// Segment resolves a segment id.
func (r *Resolver) Segment(id domain.ID) (domain.RawSegment, error) {
	return lookup(r.segments, domain.RefSegment, id)
}

// Leg resolves a leg id.
func (r *Resolver) Leg(id domain.ID) (domain.RawLeg, error) {
	return lookup(r.legs, domain.RefLeg, id)
}

// Resolve looks up id in the table named by kind.
// Unknown kinds return domain.ErrInvalidInput.
func (r *Resolver) Resolve(kind domain.RefKind, id domain.ID) (any, error) {
	switch kind {
	case domain.RefPlace:
		return r.Place(id)
	case domain.RefCarrier:
		return r.Carrier(id)
	case domain.RefSegment:
		return r.Segment(id)
	case domain.RefLeg:
		return r.Leg(id)
	default:
		return nil, domain.ErrInvalidInput
	}
}

// PlaceCode resolves a place id to its display code.
func (r *Resolver) PlaceCode(id domain.ID) (string, error) {
	place, err := r.Place(id)
	if err != nil {
		return "", err
	}
	return place.DisplayCode, nil
}

func index[T any](items []T, key func(T) domain.ID) map[domain.ID]T {
	m := make(map[domain.ID]T, len(items))
	for _, item := range items {
		m[key(item)] = item
	}
	return m
}

func lookup[T any](table map[domain.ID]T, kind domain.RefKind, id domain.ID) (T, error) {
	record, ok := table[id]
	if !ok {
		var zero T
		return zero, &domain.MissingReferenceError{Kind: kind, ID: id}
	}
	return record, nil
}
