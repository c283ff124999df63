package presenters

import (
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
	"github.com/custodia-labs/farescope/internal/presenters/compact"
	"github.com/custodia-labs/farescope/internal/presenters/csv"
	"github.com/custodia-labs/farescope/internal/presenters/jsonout"
	"github.com/custodia-labs/farescope/internal/presenters/text"
)

// RegisterDefaults registers all built-in presenters with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(text.Name, buildText)
	r.Register(jsonout.Name, buildJSON)
	r.Register(compact.NameJSON, buildCompact(compact.EncodingJSON))
	r.Register(compact.NameYAML, buildCompact(compact.EncodingYAML))
	r.Register(csv.Name, buildCSV)
}

// NewDefaultRegistry returns a registry with the built-in presenters.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// buildText creates a text presenter.
// Supported config keys:
//   - separator (string): Text between itineraries (default: blank line)
func buildText(cfg map[string]any) (driven.Presenter, error) {
	var opts []text.Option
	if sep, ok := cfg["separator"].(string); ok {
		opts = append(opts, text.WithSeparator(sep))
	}
	return text.New(opts...), nil
}

// buildJSON creates a JSON presenter.
// Supported config keys:
//   - indent (string): Indentation (default: two spaces)
func buildJSON(cfg map[string]any) (driven.Presenter, error) {
	indent := "  "
	if v, ok := cfg["indent"].(string); ok {
		indent = v
	}
	return jsonout.New(indent), nil
}

// buildCompact creates a compact presenter.
// Supported config keys:
//   - max_results (int): Itineraries kept (default: 10)
func buildCompact(encoding compact.Encoding) BuilderFunc {
	return func(cfg map[string]any) (driven.Presenter, error) {
		opts := []compact.Option{compact.WithEncoding(encoding)}
		if n := getIntFromConfig(cfg, "max_results"); n > 0 {
			opts = append(opts, compact.WithMaxResults(n))
		}
		return compact.New(opts...), nil
	}
}

func buildCSV(map[string]any) (driven.Presenter, error) {
	return csv.New(), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
