package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

var (
	compressMax  int
	compressYAML bool
)

var compressCmd = &cobra.Command{
	Use:   "compress [file]",
	Short: "Print itineraries in compact form for an LLM prompt",
	Long: `Normalises a payload and prints the first N itineraries in a compact
form: a route per leg, minute-precision times and one short line per
segment. Input order is kept; nothing is re-sorted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().IntVarP(&compressMax, "max-results", "n", 0, "itineraries to keep (0 = configured value)")
	compressCmd.Flags().BoolVar(&compressYAML, "yaml", false, "encode as YAML instead of JSON")
	rootCmd.AddCommand(compressCmd)
}

// resolveMaxResults picks the flag value, then the configured bound.
func resolveMaxResults() int {
	if compressMax > 0 {
		return compressMax
	}
	if settingsService != nil {
		return settingsService.Get().MaxResults
	}
	return domain.DefaultMaxResults
}

func runCompress(cmd *cobra.Command, args []string) error {
	if compressMax < 0 {
		return fmt.Errorf("%w: --max-results must not be negative", domain.ErrInvalidInput)
	}

	report, err := loadReport(cmd, args)
	if err != nil {
		return err
	}

	format := "compact"
	if compressYAML {
		format = "compact-yaml"
	}

	data, err := flightService.RenderWith(commandContext(cmd), format,
		map[string]any{"max_results": resolveMaxResults()}, report.Itineraries)
	if err != nil {
		return err
	}
	return writeOutput(cmd, data)
}
