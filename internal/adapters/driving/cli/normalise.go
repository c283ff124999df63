package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var normaliseReport bool

var normaliseCmd = &cobra.Command{
	Use:     "normalise [file]",
	Aliases: []string{"normalize"},
	Short:   "Resolve a payload into round-trip itineraries",
	Long: `Resolves every reference in a flight-search payload and prints the
round-trip itineraries as JSON, in input order.

Itineraries without exactly two legs are skipped. Itineraries with a
dangling reference or an unparseable timestamp are dropped individually.
Use --report to see what happened to each input itinerary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalise,
}

func init() {
	normaliseCmd.Flags().BoolVar(&normaliseReport, "report", false, "include per-itinerary outcomes and counts")
	rootCmd.AddCommand(normaliseCmd)
}

func runNormalise(cmd *cobra.Command, args []string) error {
	report, err := loadReport(cmd, args)
	if err != nil {
		return err
	}

	if normaliseReport {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		return writeOutput(cmd, data)
	}

	data, err := flightService.Render(commandContext(cmd), "json", report.Itineraries)
	if err != nil {
		return err
	}
	return writeOutput(cmd, data)
}
