package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

var cheapestCompressed bool

var cheapestCmd = &cobra.Command{
	Use:   "cheapest [file]",
	Short: "Print the lowest-priced itinerary",
	Long: `Normalises a payload and prints the itinerary with the lowest price.
Ties go to the itinerary that appears first.

With --compressed the choice is made among the first N itineraries kept
by compress (the configured max results) and printed in compact form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheapest,
}

func init() {
	cheapestCmd.Flags().BoolVar(&cheapestCompressed, "compressed", false, "print the compact form instead of the summary")
	rootCmd.AddCommand(cheapestCmd)
}

func runCheapest(cmd *cobra.Command, args []string) error {
	report, err := loadReport(cmd, args)
	if err != nil {
		return err
	}

	candidates := report.Itineraries
	if cheapestCompressed {
		candidates = candidates[:min(resolveMaxResults(), len(candidates))]
	}

	best, ok := flightService.Cheapest(candidates)
	if !ok {
		return writeOutput(cmd, []byte(noItineraries))
	}

	if cheapestCompressed {
		data, err := flightService.RenderWith(commandContext(cmd), "compact",
			map[string]any{"max_results": 1}, []domain.Itinerary{best})
		if err != nil {
			return err
		}
		return writeOutput(cmd, data)
	}

	text := flightService.Describe(best)
	if useColor(cmd) {
		text = colorize(text)
	}
	return writeOutput(cmd, []byte(text))
}
