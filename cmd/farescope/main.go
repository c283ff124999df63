// Command farescope normalises flight-search responses into round-trip
// itineraries and renders them for people, tools and prompts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/farescope/internal/adapters/driven/config/file"
	"github.com/custodia-labs/farescope/internal/adapters/driven/payload"
	"github.com/custodia-labs/farescope/internal/adapters/driving/cli"
	"github.com/custodia-labs/farescope/internal/core/services"
	"github.com/custodia-labs/farescope/internal/logger"
	"github.com/custodia-labs/farescope/internal/normalisers/flightapi"
	"github.com/custodia-labs/farescope/internal/presenters"
	"github.com/custodia-labs/farescope/internal/presenters/compact"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := file.LoadEnv(); err != nil {
		logger.Warn("failed to load .env: %v", err)
	}

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires the adapters for the given config directory.
func buildServices(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	config := file.NewEnvStore(store)
	logger.Debug("config file: %s", config.Path())

	registry := presenters.NewDefaultRegistry()
	settings := services.NewSettingsService(config, registry)

	compactConfig := map[string]any{"max_results": settings.Get().MaxResults}
	flight := services.NewFlightService(
		payload.NewJSONDecoder(),
		flightapi.New(),
		registry,
		compact.Compressor{},
		services.WithPresenterConfig("compact", compactConfig),
		services.WithPresenterConfig("compact-yaml", compactConfig),
	)

	return &cli.Services{Flight: flight, Settings: settings}, nil
}
