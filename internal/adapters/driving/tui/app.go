package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/farescope/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/farescope/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/farescope/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/farescope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/farescope/internal/core/domain"
)

// DetailMode selects how the detail pane renders the selected itinerary.
type DetailMode string

const (
	// ModeText shows the human-readable summary.
	ModeText DetailMode = "text"

	// ModeCompact shows the prompt-compressed form.
	ModeCompact DetailMode = "compact"
)

// compactFormat is the presenter used in ModeCompact.
const compactFormat = "compact"

// App is the itinerary browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	list   *list.ItineraryList
	detail viewport.Model
	status *status.Bar

	mode    DetailMode
	content string

	// err holds the last render error.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	cheapest := -1
	if its := ports.Report.Itineraries; len(its) > 0 {
		best, _ := ports.Flight.Cheapest(its)
		for i := range its {
			if its[i].ID == best.ID {
				cheapest = i
				break
			}
		}
	}

	l := list.NewItineraryList(s)
	l.SetItems(ports.Report.Itineraries, cheapest)

	bar := status.NewBar(s, km)
	bar.SetCounts(len(ports.Report.Itineraries), ports.Report.Filtered, ports.Report.Failed)

	a := &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		list:   l,
		detail: viewport.New(40, 10),
		status: bar,
		mode:   ModeText,
	}
	a.refreshDetail()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("farescope")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.status.SetShowAll(!a.status.ShowAll())
		return a, nil
	case key.Matches(msg, a.keymap.Up):
		a.list.MoveUp()
	case key.Matches(msg, a.keymap.Down):
		a.list.MoveDown()
	case key.Matches(msg, a.keymap.Top):
		a.list.Top()
	case key.Matches(msg, a.keymap.Bottom):
		a.list.Bottom()
	case key.Matches(msg, a.keymap.Cheapest):
		a.list.SelectCheapest()
	case key.Matches(msg, a.keymap.Toggle):
		a.toggleMode()
	case key.Matches(msg, a.keymap.ScrollUp, a.keymap.ScrollDown):
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	default:
		return a, nil
	}

	a.refreshDetail()
	return a, nil
}

func (a *App) toggleMode() {
	if a.mode == ModeText {
		a.mode = ModeCompact
	} else {
		a.mode = ModeText
	}
	a.status.SetMode(string(a.mode))
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	body := max(height-2, 3)
	listWidth := max(width*2/5, 20)
	paneWidth := max(width-listWidth-4, 20)

	a.list.SetDimensions(listWidth, body)
	a.detail.Width = paneWidth
	a.detail.Height = body - 2
	a.status.SetWidth(width)
	a.refreshDetail()
}

// refreshDetail re-renders the selected itinerary into the detail pane.
func (a *App) refreshDetail() {
	a.err = nil
	it, ok := a.list.SelectedItinerary()
	if !ok {
		a.content = ""
		a.detail.SetContent("")
		return
	}

	var content string
	switch a.mode {
	case ModeCompact:
		out, err := a.ports.Flight.RenderWith(a.ctx, compactFormat,
			map[string]any{"max_results": 1}, []domain.Itinerary{it})
		if err != nil {
			a.err = err
		}
		content = string(out)
	default:
		content = a.ports.Flight.Describe(it)
	}

	a.content = content
	a.detail.SetContent(content)
	a.detail.GotoTop()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := a.styles.Title.Render("farescope")
	left := a.list.View()

	right := a.detail.View()
	if a.err != nil {
		right = a.styles.Error.Render(fmt.Sprintf("Error: %v", a.err))
	}
	right = a.styles.Pane.Render(right)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, a.status.View())
}

// Mode returns the current detail mode.
func (a *App) Mode() DetailMode {
	return a.mode
}

// Selected returns the selected itinerary index.
func (a *App) Selected() int {
	return a.list.Selected()
}

// Detail returns the unstyled detail pane content.
func (a *App) Detail() string {
	return a.content
}

// Err returns the last render error.
func (a *App) Err() error {
	return a.err
}
