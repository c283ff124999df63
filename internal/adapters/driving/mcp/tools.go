package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// Presenter names used by the tools.
const (
	formatJSON        = "json"
	formatCompact     = "compact"
	formatCompactYAML = "compact-yaml"
)

// NormaliseInput is the input schema for the normalise_itineraries tool.
type NormaliseInput struct {
	Payload string `json:"payload" jsonschema:"the raw flight-search response as a JSON document"`
}

// OutcomeOutput describes what happened to one input itinerary.
type OutcomeOutput struct {
	Index       int    `json:"index"`
	ItineraryID string `json:"itinerary_id,omitempty"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
}

// NormaliseOutput is the output schema for the normalise_itineraries tool.
type NormaliseOutput struct {
	// Itineraries is the normalised list as a JSON document.
	Itineraries string          `json:"itineraries"`
	Count       int             `json:"count"`
	Filtered    int             `json:"filtered"`
	Failed      int             `json:"failed"`
	Outcomes    []OutcomeOutput `json:"outcomes"`
}

// CompressInput is the input schema for the compress_itineraries tool.
type CompressInput struct {
	Payload    string `json:"payload" jsonschema:"the raw flight-search response as a JSON document"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of itineraries to keep (default 10)"`
	Encoding   string `json:"encoding,omitempty" jsonschema:"json or yaml (default json)"`
}

// CompressOutput is the output schema for the compress_itineraries tool.
type CompressOutput struct {
	Compressed string `json:"compressed"`
	Count      int    `json:"count"`
}

// CheapestInput is the input schema for the cheapest_itinerary tool.
type CheapestInput struct {
	Payload    string `json:"payload" jsonschema:"the raw flight-search response as a JSON document"`
	Compressed bool   `json:"compressed,omitempty" jsonschema:"choose among the first max_results itineraries and return the compressed form"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"itineraries considered when compressed (default 10)"`
}

// CheapestOutput is the output schema for the cheapest_itinerary tool.
type CheapestOutput struct {
	Found       bool   `json:"found"`
	ItineraryID string `json:"itinerary_id,omitempty"`
	PriceUSD    string `json:"price_usd,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalise_itineraries",
		Description: "Resolve a raw flight-search response into round-trip itineraries",
	}, s.handleNormalise)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compress_itineraries",
		Description: "Reduce itineraries to a compact form for inclusion in a prompt",
	}, s.handleCompress)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cheapest_itinerary",
		Description: "Find the lowest-priced round-trip itinerary",
	}, s.handleCheapest)
}

func (s *Server) load(ctx context.Context, payload string) (*domain.Report, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, ErrEmptyPayload
	}
	return s.ports.Flight.Load(ctx, strings.NewReader(payload))
}

// handleNormalise handles the normalise_itineraries tool invocation.
func (s *Server) handleNormalise(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NormaliseInput,
) (*mcp.CallToolResult, NormaliseOutput, error) {
	report, err := s.load(ctx, input.Payload)
	if err != nil {
		return nil, NormaliseOutput{}, err
	}

	data, err := s.ports.Flight.Render(ctx, formatJSON, report.Itineraries)
	if err != nil {
		return nil, NormaliseOutput{}, err
	}

	output := NormaliseOutput{
		Itineraries: string(data),
		Count:       len(report.Itineraries),
		Filtered:    report.Filtered,
		Failed:      report.Failed,
		Outcomes:    make([]OutcomeOutput, len(report.Outcomes)),
	}
	for i, o := range report.Outcomes {
		output.Outcomes[i] = OutcomeOutput{
			Index:       o.Index,
			ItineraryID: o.ItineraryID.String(),
			Status:      string(o.Status),
			Reason:      o.Reason,
		}
	}

	return nil, output, nil
}

// handleCompress handles the compress_itineraries tool invocation.
func (s *Server) handleCompress(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompressInput,
) (*mcp.CallToolResult, CompressOutput, error) {
	format := formatCompact
	switch strings.ToLower(input.Encoding) {
	case "", "json":
	case "yaml":
		format = formatCompactYAML
	default:
		return nil, CompressOutput{}, fmt.Errorf("%w: encoding %q", domain.ErrUnsupportedFormat, input.Encoding)
	}

	maxResults := input.MaxResults
	if maxResults <= 0 {
		maxResults = s.defaultMaxResults()
	}

	report, err := s.load(ctx, input.Payload)
	if err != nil {
		return nil, CompressOutput{}, err
	}

	data, err := s.ports.Flight.RenderWith(ctx, format, map[string]any{"max_results": maxResults}, report.Itineraries)
	if err != nil {
		return nil, CompressOutput{}, err
	}

	return nil, CompressOutput{
		Compressed: string(data),
		Count:      min(maxResults, len(report.Itineraries)),
	}, nil
}

// handleCheapest handles the cheapest_itinerary tool invocation.
func (s *Server) handleCheapest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheapestInput,
) (*mcp.CallToolResult, CheapestOutput, error) {
	report, err := s.load(ctx, input.Payload)
	if err != nil {
		return nil, CheapestOutput{}, err
	}

	candidates := report.Itineraries
	if input.Compressed {
		maxResults := input.MaxResults
		if maxResults <= 0 {
			maxResults = s.defaultMaxResults()
		}
		candidates = candidates[:min(maxResults, len(candidates))]
	}

	best, ok := s.ports.Flight.Cheapest(candidates)
	if !ok {
		return nil, CheapestOutput{Found: false}, nil
	}

	output := CheapestOutput{
		Found:       true,
		ItineraryID: best.ID,
		PriceUSD:    best.PriceUSD.StringFixed(2),
	}

	if input.Compressed {
		data, err := s.ports.Flight.RenderWith(ctx, formatCompact,
			map[string]any{"max_results": 1}, []domain.Itinerary{best})
		if err != nil {
			return nil, CheapestOutput{}, err
		}
		output.Summary = string(data)
	} else {
		output.Summary = s.ports.Flight.Describe(best)
	}

	return nil, output, nil
}

func (s *Server) defaultMaxResults() int {
	if s.ports.Settings != nil {
		if n := s.ports.Settings.Get().MaxResults; n > 0 {
			return n
		}
	}
	return domain.DefaultMaxResults
}
