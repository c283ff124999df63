package driving

import "github.com/custodia-labs/farescope/internal/core/domain"

// SettingsService resolves configuration from file and environment.
type SettingsService interface {
	// Get returns the effective settings, falling back to defaults.
	Get() domain.Settings

	// SetMaxResults persists a new compression bound.
	SetMaxResults(n int) error

	// SetOutputFormat persists a new default format.
	SetOutputFormat(format string) error
}
