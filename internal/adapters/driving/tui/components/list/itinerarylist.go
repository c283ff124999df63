// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/farescope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/farescope/internal/core/domain"
)

// ItineraryList displays itineraries in a navigable list.
type ItineraryList struct {
	items    []domain.Itinerary
	selected int
	cheapest int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItineraryList creates a new itinerary list component.
func NewItineraryList(s *styles.Styles) *ItineraryList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ItineraryList{
		cheapest: -1,
		styles:   s,
		width:    60,
		height:   10,
	}
}

// SetItems replaces the list contents and resets the selection.
// cheapest is the index of the lowest fare, or -1.
func (l *ItineraryList) SetItems(items []domain.Itinerary, cheapest int) {
	l.items = items
	l.selected = 0
	l.cheapest = cheapest
}

// View renders the list.
func (l *ItineraryList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("No itineraries found.")
	}

	lines := make([]string, 0, len(l.items)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Itineraries (%d)", len(l.items))), "")

	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.items))

	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i))
	}

	return strings.Join(lines, "\n")
}

// Row returns the plain text of one row without styling.
func Row(it domain.Itinerary) string {
	return fmt.Sprintf("%s %s  %s  %s  $%s",
		it.Outbound.Origin, it.Outbound.Destination,
		it.Outbound.DepartureTime.Format("01-02 15:04"),
		stops(it),
		it.PriceUSD.StringFixed(2))
}

func stops(it domain.Itinerary) string {
	n := max(len(it.Outbound.Segments)-1, 0) + max(len(it.Return.Segments)-1, 0)
	switch n {
	case 0:
		return "direct"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", n)
	}
}

func (l *ItineraryList) renderRow(i int) string {
	marker := "  "
	if i == l.cheapest {
		marker = "* "
	}
	row := marker + Row(l.items[i])
	if len(row) > l.width && l.width > 3 {
		row = row[:l.width-3] + "..."
	}
	switch i {
	case l.selected:
		return l.styles.Selected.Render(row)
	case l.cheapest:
		return l.styles.Price.Render(row)
	}
	return l.styles.Normal.Render(row)
}

// Selected returns the index of the selected itinerary.
func (l *ItineraryList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ItineraryList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedItinerary returns the selected itinerary, or false when empty.
func (l *ItineraryList) SelectedItinerary() (domain.Itinerary, bool) {
	if len(l.items) == 0 {
		return domain.Itinerary{}, false
	}
	return l.items[l.selected], true
}

// MoveUp moves selection up.
func (l *ItineraryList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ItineraryList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// Top selects the first itinerary.
func (l *ItineraryList) Top() {
	l.selected = 0
}

// Bottom selects the last itinerary.
func (l *ItineraryList) Bottom() {
	if len(l.items) > 0 {
		l.selected = len(l.items) - 1
	}
}

// SelectCheapest selects the lowest fare if known.
func (l *ItineraryList) SelectCheapest() {
	l.SetSelected(l.cheapest)
}

// SetDimensions sets the component dimensions.
func (l *ItineraryList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of itineraries.
func (l *ItineraryList) Count() int {
	return len(l.items)
}
