package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	priceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
)

// useColor reports whether styled output should be written: colour must
// be enabled in settings and stdout must be a terminal.
func useColor(cmd *cobra.Command) bool {
	if settingsService != nil && !settingsService.Get().Color {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorize styles the price and leg headings of text-format output.
func colorize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Price: "):
			lines[i] = priceStyle.Render(line)
		case line == "Outbound Flight:" || line == "Return Flight:":
			lines[i] = headingStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
