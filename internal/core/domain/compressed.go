package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CompressedLeg is a leg reduced to strings for prompt inclusion.
type CompressedLeg struct {
	Route     string   `json:"route" yaml:"route"`
	Departure string   `json:"departure" yaml:"departure"`
	Arrival   string   `json:"arrival" yaml:"arrival"`
	Segments  []string `json:"segments" yaml:"segments"`
}

// CompressedItinerary drops airline names, durations and the direct flag.
// It cannot be converted back into an Itinerary.
type CompressedItinerary struct {
	PriceUSD decimal.Decimal `json:"price_usd" yaml:"price_usd"`
	Outbound CompressedLeg   `json:"outbound" yaml:"outbound"`
	Return   CompressedLeg   `json:"return" yaml:"return"`
}

// Price implements Priced.
func (c CompressedItinerary) Price() decimal.Decimal {
	return c.PriceUSD
}

// MarshalJSON writes price_usd as a JSON number.
func (c CompressedItinerary) MarshalJSON() ([]byte, error) {
	type fields CompressedItinerary
	return json.Marshal(struct {
		PriceUSD json.RawMessage `json:"price_usd"`
		fields
	}{jsonNumber(c.PriceUSD), fields(c)})
}

// MarshalYAML writes price_usd as a YAML number. Prices carry two
// decimal places, which float64 formats without loss.
func (c CompressedItinerary) MarshalYAML() (any, error) {
	return struct {
		PriceUSD float64       `yaml:"price_usd"`
		Outbound CompressedLeg `yaml:"outbound"`
		Return   CompressedLeg `yaml:"return"`
	}{c.PriceUSD.InexactFloat64(), c.Outbound, c.Return}, nil
}
