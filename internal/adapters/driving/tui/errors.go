package tui

import "errors"

// ErrMissingFlightService is returned when the flight service is not provided.
var ErrMissingFlightService = errors.New("tui: flight service is required")

// ErrMissingReport is returned when no normalised report is provided.
var ErrMissingReport = errors.New("tui: report is required")
