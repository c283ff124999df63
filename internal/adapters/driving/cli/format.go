package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/farescope/internal/core/domain"
	"github.com/custodia-labs/farescope/internal/watch"
)

// noItineraries is printed when nothing survives normalisation.
const noItineraries = "No itineraries found."

var (
	formatName  string
	formatWatch bool
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Print itineraries in a readable or export format",
	Long: `Normalises a payload and renders the itineraries.

The default format is the human-readable text summary. Use --format to
pick another registered format (text, json, compact, compact-yaml, csv).
With --watch the file is re-rendered whenever it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&formatName, "format", "f", "", "output format (default from settings, else text)")
	formatCmd.Flags().BoolVarP(&formatWatch, "watch", "w", false, "re-render when the input file changes")
	rootCmd.AddCommand(formatCmd)
}

// resolveFormat picks the flag value, then the configured default.
func resolveFormat() string {
	if formatName != "" {
		return formatName
	}
	if settingsService != nil {
		return settingsService.Get().OutputFormat
	}
	return domain.DefaultOutputFormat
}

func runFormat(cmd *cobra.Command, args []string) error {
	format := resolveFormat()

	if formatWatch {
		if fromStdin(args) {
			return errors.New("--watch requires a file argument")
		}
		return watchAndRender(cmd, args, format)
	}

	return renderOnce(cmd, args, format)
}

func renderOnce(cmd *cobra.Command, args []string, format string) error {
	report, err := loadReport(cmd, args)
	if err != nil {
		return err
	}

	if len(report.Itineraries) == 0 && format == domain.DefaultOutputFormat {
		return writeOutput(cmd, []byte(noItineraries))
	}

	data, err := flightService.Render(commandContext(cmd), format, report.Itineraries)
	if err != nil {
		return err
	}

	if format == domain.DefaultOutputFormat && useColor(cmd) {
		data = []byte(colorize(string(data)))
	}
	return writeOutput(cmd, data)
}

func watchAndRender(cmd *cobra.Command, args []string, format string) error {
	ctx := commandContext(cmd)

	changes, err := watch.New(args[0]).Start(ctx)
	if err != nil {
		return err
	}

	if err := renderOnce(cmd, args, format); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	for range changes {
		fmt.Fprintf(cmd.OutOrStdout(), "\n--- %s changed ---\n\n", args[0])
		if err := renderOnce(cmd, args, format); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	return nil
}
