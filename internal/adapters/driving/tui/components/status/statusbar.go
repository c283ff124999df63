// Package status provides the status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/farescope/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/farescope/internal/adapters/driving/tui/styles"
)

// Bar shows load counts on the left and key hints on the right.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	help     help.Model
	kept     int
	filtered int
	failed   int
	mode     string
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	h := help.New()
	h.Styles.ShortKey = s.Muted
	h.Styles.ShortDesc = s.Muted

	return &Bar{
		styles: s,
		keymap: km,
		help:   h,
		mode:   "text",
		width:  80,
	}
}

// SetCounts sets the normalisation counts shown on the left.
func (b *Bar) SetCounts(kept, filtered, failed int) {
	b.kept = kept
	b.filtered = filtered
	b.failed = failed
}

// SetMode sets the detail pane mode label.
func (b *Bar) SetMode(mode string) {
	b.mode = mode
}

// SetShowAll toggles the full help.
func (b *Bar) SetShowAll(all bool) {
	b.help.ShowAll = all
}

// ShowAll reports whether the full help is shown.
func (b *Bar) ShowAll() bool {
	return b.help.ShowAll
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
	b.help.Width = width
}

// Summary returns the unstyled left-hand text.
func (b *Bar) Summary() string {
	parts := []string{fmt.Sprintf("%d itineraries", b.kept)}
	if b.filtered > 0 {
		parts = append(parts, fmt.Sprintf("%d not round trip", b.filtered))
	}
	if b.failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", b.failed))
	}
	return strings.Join(parts, ", ") + " [" + b.mode + "]"
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.styles.Normal.Render(b.Summary())
	if b.failed > 0 {
		left = b.styles.Error.Render(b.Summary())
	}

	if b.help.ShowAll {
		return lipgloss.JoinVertical(lipgloss.Left,
			b.styles.StatusBar.Render(left),
			b.help.FullHelpView(b.keymap.FullHelp()))
	}

	right := b.help.ShortHelpView(b.keymap.ShortHelp())
	padding := max(b.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)

	return b.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}
