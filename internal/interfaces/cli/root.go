// Package cli implements the medtext command-line interface. Commands are
// thin wrappers over the analysis service; they parse flags, read text from
// arguments or stdin, and print JSON or plain text to stdout.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/MedText-Intelligence/internal/application/analysis"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// Deps carries the collaborators the commands operate on. ServeFunc is
// provided by the composition root so that `medtext serve` can start the
// full API server without this package importing the server wiring.
type Deps struct {
	Service   analysis.Service
	Graph     knowledge.Graph
	Logger    logging.Logger
	ServeFunc func(ctx context.Context, configFile string) error
}

// NewRootCmd builds the medtext command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "medtext",
		Short:         "Clinical text corrections, analysis, and validation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newCorrectCmd(deps),
		newAnalyzeCmd(deps),
		newValidateCmd(deps),
		newGraphCmd(deps),
		newServeCmd(deps),
	)
	return root
}

// readText joins positional arguments, falling back to stdin so the tool
// composes in pipelines.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeBadRequest, "failed to read text from stdin")
	}
	return strings.TrimSpace(string(raw)), nil
}

// printJSON writes indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, value interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

//Personal.AI order the ending
