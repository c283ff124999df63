package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/farescope/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse itineraries in an interactive terminal UI",
	Long: `Opens a terminal UI listing the normalised itineraries with a detail
pane for the selected one.

Controls:
  ↑/k, ↓/j  - Navigate itineraries
  g, G      - First / last
  c         - Jump to the cheapest
  tab       - Toggle text / compact detail
  pgup/pgdn - Scroll detail
  ?         - Toggle help
  q         - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	report, err := loadReport(cmd, args)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Flight: flightService, Report: report})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	ctx := commandContext(cmd)
	app.WithContext(ctx)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if fromStdin(args) {
		// The payload consumed stdin; read keys from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
