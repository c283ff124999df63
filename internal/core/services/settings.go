package services

import (
	"fmt"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/core/ports/driven"
	"github.com/custodia-labs/farescope/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMaxResults   = "compress.max_results"
	keyOutputFormat = "output.format"
	keyColor        = "display.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	formats     driven.PresenterFactory
}

// NewSettingsService creates a new settings service.
// formats may be nil, in which case output formats are not validated.
func NewSettingsService(configStore driven.ConfigStore, formats driven.PresenterFactory) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		formats:     formats,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() domain.Settings {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		MaxResults:   defaults.MaxResults,
		OutputFormat: defaults.OutputFormat,
		Color:        defaults.Color,
	}

	if n := s.configStore.GetInt(keyMaxResults); n > 0 {
		settings.MaxResults = n
	}
	if format := s.configStore.GetString(keyOutputFormat); format != "" && s.knownFormat(format) {
		settings.OutputFormat = format
	}
	if _, ok := s.configStore.Get(keyColor); ok {
		settings.Color = s.configStore.GetBool(keyColor)
	}

	return settings
}

// SetMaxResults persists the compression bound.
func (s *SettingsService) SetMaxResults(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: max results must be positive, got %d", domain.ErrInvalidInput, n)
	}
	if err := s.configStore.Set(keyMaxResults, n); err != nil {
		return fmt.Errorf("save max results: %w", err)
	}
	return nil
}

// SetOutputFormat persists the default output format.
func (s *SettingsService) SetOutputFormat(format string) error {
	if !s.knownFormat(format) {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	if err := s.configStore.Set(keyOutputFormat, format); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	return nil
}

func (s *SettingsService) knownFormat(format string) bool {
	if s.formats == nil {
		return format != ""
	}
	for _, name := range s.formats.Names() {
		if name == format {
			return true
		}
	}
	return false
}
