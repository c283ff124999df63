// Package text renders itineraries as human-readable text blocks.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
)

// Name is the presenter name.
const Name = "text"

const (
	dateTimeLayout = "2006-01-02 03:04 PM"
	timeLayout     = "03:04 PM"
)

// Ensure Presenter implements the interface.
var _ driven.Presenter = (*Presenter)(nil)

// Presenter joins Format output for each itinerary.
type Presenter struct {
	separator string
}

// Option configures the text presenter.
type Option func(*Presenter)

// WithSeparator sets the text placed between itineraries.
func WithSeparator(sep string) Option {
	return func(p *Presenter) {
		p.separator = sep
	}
}

// New creates a new text presenter.
func New(opts ...Option) *Presenter {
	p := &Presenter{separator: "\n\n"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the presenter name.
func (p *Presenter) Name() string {
	return Name
}

// Render formats every itinerary and joins them with the separator.
func (p *Presenter) Render(_ context.Context, itineraries []domain.Itinerary) ([]byte, error) {
	return []byte(strings.Join(FormatAll(itineraries), p.separator)), nil
}

// Format renders one itinerary: a price line, then the outbound and
// return blocks, separated by blank lines.
func Format(it domain.Itinerary) string {
	blocks := []string{
		"Price: $" + it.PriceUSD.StringFixed(2),
		formatLeg(it.Outbound, "Outbound"),
		formatLeg(it.Return, "Return"),
	}
	return strings.Join(blocks, "\n\n")
}

// FormatAll formats each itinerary in order.
func FormatAll(itineraries []domain.Itinerary) []string {
	out := make([]string, len(itineraries))
	for i := range itineraries {
		out[i] = Format(itineraries[i])
	}
	return out
}

func formatLeg(leg domain.Leg, name string) string {
	direct := "No"
	if leg.IsDirect {
		direct = "Yes"
	}

	lines := []string{
		name + " Flight:",
		fmt.Sprintf("- From %s to %s", leg.Origin, leg.Destination),
		"- Departure: " + leg.DepartureTime.Format(dateTimeLayout),
		"- Arrival: " + leg.ArrivalTime.Format(dateTimeLayout),
		fmt.Sprintf("- Duration: %d minutes", leg.Duration),
		"- Direct Flight: " + direct,
		"- Segments:",
	}
	for _, seg := range leg.Segments {
		lines = append(lines, formatSegment(seg))
	}
	return strings.Join(lines, "\n")
}

func formatSegment(seg domain.Segment) string {
	return fmt.Sprintf("  - %s %s%s: %s → %s, Dep: %s, Arr: %s, Duration: %d min",
		seg.Airline, seg.AirlineCode, seg.FlightNumber,
		seg.Origin, seg.Destination,
		seg.DepartureTime.Format(timeLayout),
		seg.ArrivalTime.Format(timeLayout),
		seg.Duration,
	)
}
