package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var errNoSettingsService = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the defaults used by format and compress.

Values are stored in config.toml in the config directory. The environment
variables FARESCOPE_COMPRESS_MAX_RESULTS, FARESCOPE_OUTPUT_FORMAT and
FARESCOPE_DISPLAY_COLOR take precedence over the file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsMaxResultsCmd = &cobra.Command{
	Use:   "max-results N",
	Short: "Set how many itineraries compress keeps",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsMaxResults,
}

var settingsFormatCmd = &cobra.Command{
	Use:   "format NAME",
	Short: "Set the default output format",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsFormat,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsMaxResultsCmd)
	settingsCmd.AddCommand(settingsFormatCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	settings := settingsService.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "  Max results:   %d\n", settings.MaxResults)
	fmt.Fprintf(out, "  Output format: %s\n", settings.OutputFormat)
	fmt.Fprintf(out, "  Colour:        %s\n", yesNo(settings.Color))
	if flightService != nil {
		fmt.Fprintf(out, "  Formats:       %s\n", strings.Join(flightService.Formats(), ", "))
	}
	return nil
}

func runSettingsMaxResults(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid number %q", args[0])
	}
	if err := settingsService.SetMaxResults(n); err != nil {
		return err
	}

	cmd.Printf("Set max results to %d\n", n)
	return nil
}

func runSettingsFormat(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	if err := settingsService.SetOutputFormat(args[0]); err != nil {
		return err
	}

	cmd.Printf("Set output format to %s\n", args[0])
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
