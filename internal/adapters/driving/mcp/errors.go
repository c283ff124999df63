// Package mcp provides an MCP (Model Context Protocol) server adapter for farescope.
// It lets language-model agents normalise, compress and select itineraries
// from raw flight-search payloads.
package mcp

import "errors"

// ErrMissingFlightService is returned when the flight service is not provided.
var ErrMissingFlightService = errors.New("mcp: flight service is required")

// ErrEmptyPayload is returned when a tool is called without a payload.
var ErrEmptyPayload = errors.New("mcp: payload is required")
