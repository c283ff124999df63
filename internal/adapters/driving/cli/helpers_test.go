package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/farescope/internal/adapters/driven/config/file"
	"github.com/custodia-labs/farescope/internal/adapters/driven/payload"
	"github.com/custodia-labs/farescope/internal/core/services"
	"github.com/custodia-labs/farescope/internal/fixtures"
	"github.com/custodia-labs/farescope/internal/normalisers/flightapi"
	"github.com/custodia-labs/farescope/internal/presenters"
	"github.com/custodia-labs/farescope/internal/presenters/compact"
)

// setupTestServices wires the real pipeline with a config store in a temp dir.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	registry := presenters.NewDefaultRegistry()
	flight := services.NewFlightService(
		payload.NewJSONDecoder(),
		flightapi.New(),
		registry,
		compact.Compressor{},
	)
	settings := services.NewSettingsService(store, registry)

	resetContexts(rootCmd)
	origFlight, origSettings, origFactory := flightService, settingsService, serviceFactory
	SetServices(flight, settings)
	serviceFactory = nil

	return func() {
		flightService, settingsService, serviceFactory = origFlight, origSettings, origFactory
		resetFlags()
		resetContexts(rootCmd)
	}
}

// resetContexts clears the contexts cobra caches on commands between runs,
// so each execution picks up the context it was started with.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck // nil lets cobra re-inherit the parent context
	for _, sub := range cmd.Commands() {
		resetContexts(sub)
	}
}

func resetFlags() {
	verbose = false
	configDir = ""
	normaliseReport = false
	formatName = ""
	formatWatch = false
	compressMax = 0
	compressYAML = false
	cheapestCompressed = false
}

// writePayload writes content to a temp file and returns its path.
func writePayload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

// fixturePath writes the shared fixture payload.
func fixturePath(t *testing.T) string {
	return writePayload(t, fixtures.PayloadJSON)
}

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
