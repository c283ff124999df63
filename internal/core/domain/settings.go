package domain

// DefaultMaxResults bounds compressed output when nothing is configured.
const DefaultMaxResults = 10

// DefaultOutputFormat is the presenter used when nothing is configured.
const DefaultOutputFormat = "text"

// Settings are the effective application settings.
type Settings struct {
	// MaxResults bounds the compressed output.
	MaxResults int

	// OutputFormat is the default presenter name.
	OutputFormat string

	// Color enables styled terminal output.
	Color bool
}

// DefaultSettings returns settings used when no config exists.
func DefaultSettings() Settings {
	return Settings{
		MaxResults:   DefaultMaxResults,
		OutputFormat: DefaultOutputFormat,
		Color:        true,
	}
}
