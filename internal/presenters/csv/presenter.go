// Package csv renders itineraries as one CSV row each.
package csv

import (
	"context"
	"fmt"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
	"github.com/custodia-labs/farescope/internal/presenters/compact"
)

// Name is the presenter name.
const Name = "csv"

// Ensure Presenter implements the interface.
var _ driven.Presenter = (*Presenter)(nil)

// Row is the CSV shape of an itinerary.
// Segment columns use the compact segment strings joined by "; ".
type Row struct {
	ID                string `csv:"id"`
	PriceUSD          string `csv:"price_usd"`
	OutboundRoute     string `csv:"outbound_route"`
	OutboundDeparture string `csv:"outbound_departure"`
	OutboundArrival   string `csv:"outbound_arrival"`
	OutboundDuration  int    `csv:"outbound_duration"`
	OutboundDirect    bool   `csv:"outbound_direct"`
	OutboundSegments  string `csv:"outbound_segments"`
	ReturnRoute       string `csv:"return_route"`
	ReturnDeparture   string `csv:"return_departure"`
	ReturnArrival     string `csv:"return_arrival"`
	ReturnDuration    int    `csv:"return_duration"`
	ReturnDirect      bool   `csv:"return_direct"`
	ReturnSegments    string `csv:"return_segments"`
}

// Presenter writes a header row followed by one row per itinerary.
type Presenter struct{}

// New creates a CSV presenter.
func New() *Presenter {
	return &Presenter{}
}

// Name returns the presenter name.
func (p *Presenter) Name() string {
	return Name
}

// Render marshals itineraries to CSV.
func (p *Presenter) Render(_ context.Context, itineraries []domain.Itinerary) ([]byte, error) {
	rows := Rows(itineraries)
	if len(rows) == 0 {
		header, err := csvutil.Header(Row{}, "csv")
		if err != nil {
			return nil, fmt.Errorf("failed to build csv header: %w", err)
		}
		return []byte(strings.Join(header, ",") + "\n"), nil
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal csv: %w", err)
	}
	return data, nil
}

// Rows flattens itineraries into CSV rows.
func Rows(itineraries []domain.Itinerary) []Row {
	rows := make([]Row, len(itineraries))
	for i := range itineraries {
		it := &itineraries[i]
		c := compact.CompressItinerary(*it)
		rows[i] = Row{
			ID:                it.ID,
			PriceUSD:          it.PriceUSD.StringFixed(2),
			OutboundRoute:     c.Outbound.Route,
			OutboundDeparture: c.Outbound.Departure,
			OutboundArrival:   c.Outbound.Arrival,
			OutboundDuration:  it.Outbound.Duration,
			OutboundDirect:    it.Outbound.IsDirect,
			OutboundSegments:  strings.Join(c.Outbound.Segments, "; "),
			ReturnRoute:       c.Return.Route,
			ReturnDeparture:   c.Return.Departure,
			ReturnArrival:     c.Return.Arrival,
			ReturnDuration:    it.Return.Duration,
			ReturnDirect:      it.Return.IsDirect,
			ReturnSegments:    strings.Join(c.Return.Segments, "; "),
		}
	}
	return rows
}
