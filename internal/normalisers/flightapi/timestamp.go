package flightapi

import (
	"fmt"
	"time"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// timestampLayouts are tried in order. Search APIs return local airport
// time without an offset; offsets are honoured when present.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseTimestamp parses an ISO-8601 timestamp.
// Timestamps without an offset are returned in UTC so output never
// depends on the host time zone.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
}
