// Package styles holds the lipgloss palette for the itinerary browser.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the colour palette.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Price      lipgloss.Color // cheapest fare and price highlights
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the default dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#2563EB",
		Secondary:  "#06B6D4",
		Foreground: "#CDD6F4",
		Muted:      "#6C7086",
		Price:      "#A6E3A1",
		Error:      "#F38BA8",
		Border:     "#45475A",
	}
}

// Styles are the rendered styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style // highlighted list row
	Price     lipgloss.Style
	Error     lipgloss.Style
	StatusBar lipgloss.Style
	Pane      lipgloss.Style // bordered detail pane
}

// NewStyles derives styles from theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	base := lipgloss.NewStyle()
	return &Styles{
		theme:     theme,
		Title:     base.Bold(true).Foreground(theme.Primary),
		Subtitle:  base.Bold(true).Foreground(theme.Secondary),
		Normal:    base.Foreground(theme.Foreground),
		Muted:     base.Foreground(theme.Muted),
		Selected:  base.Bold(true).Foreground(theme.Foreground).Background(theme.Primary),
		Price:     base.Bold(true).Foreground(theme.Price),
		Error:     base.Foreground(theme.Error),
		StatusBar: base.Foreground(theme.Muted).Padding(0, 1),
		Pane: base.BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles for DefaultTheme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
