package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque identifier from a flight-search payload.
// Upstream APIs mix string ids (legs, segments) and numeric ids
// (places, carriers), so ID decodes from either JSON form.
type ID string

// String returns the identifier as a string.
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	s, err := unmarshalStringOrNumber(data)
	if err != nil {
		return fmt.Errorf("%w: id must be a string or number, got %s", ErrInvalidInput, data)
	}
	*id = ID(s)
	return nil
}

// FlightNumber is a marketing flight number. Some upstreams send it as a
// JSON number, so it decodes from either form like ID.
type FlightNumber string

// String returns the flight number as a string.
func (n FlightNumber) String() string {
	return string(n)
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (n *FlightNumber) UnmarshalJSON(data []byte) error {
	s, err := unmarshalStringOrNumber(data)
	if err != nil {
		return fmt.Errorf("%w: flight number must be a string or number, got %s", ErrInvalidInput, data)
	}
	*n = FlightNumber(s)
	return nil
}

func unmarshalStringOrNumber(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
