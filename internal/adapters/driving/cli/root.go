// Package cli implements the farescope command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/farescope/internal/core/ports/driving"
	"github.com/custodia-labs/farescope/internal/logger"
)

var (
	version   = "dev"
	verbose   bool
	configDir string

	flightService   driving.FlightService
	settingsService driving.SettingsService
	serviceFactory  ServiceFactory
)

// Services are the driving ports the commands use.
type Services struct {
	Flight   driving.FlightService
	Settings driving.SettingsService
}

// ServiceFactory builds services once flags are parsed.
// configDir is the --config-dir value, empty for the default.
type ServiceFactory func(configDir string) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "farescope",
	Short: "Normalise, summarise and compress flight-search results",
	Long: `farescope turns a denormalised flight-search response into usable
round-trip itineraries.

Input is read from the file argument, or from stdin when the argument is
omitted or "-". Settings live in ~/.farescope/config.toml and can be
overridden with FARESCOPE_* environment variables or a .env file.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log normalisation details to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.farescope)")
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceFactory == nil {
		return nil
	}

	s, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialise services: %w", err)
	}
	SetServices(s.Flight, s.Settings)
	return nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the driving ports.
func SetServices(flight driving.FlightService, settings driving.SettingsService) {
	flightService = flight
	settingsService = settings
}

// SetServiceFactory defers service construction until flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
