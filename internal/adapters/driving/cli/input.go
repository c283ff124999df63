package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/farescope/internal/core/domain"
)

// stdinArg selects stdin explicitly.
const stdinArg = "-"

var errNoFlightService = errors.New("flight service not configured")

// fromStdin reports whether args select stdin.
func fromStdin(args []string) bool {
	return len(args) == 0 || args[0] == stdinArg
}

// openInput returns the payload source named by args.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if fromStdin(args) {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// loadReport decodes and normalises the payload named by args.
func loadReport(cmd *cobra.Command, args []string) (*domain.Report, error) {
	if flightService == nil {
		return nil, errNoFlightService
	}

	r, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return flightService.Load(commandContext(cmd), r)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// writeOutput writes data to stdout, ending with a newline.
func writeOutput(cmd *cobra.Command, data []byte) error {
	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		_, err := io.WriteString(out, "\n")
		return err
	}
	return nil
}
