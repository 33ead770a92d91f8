// medtext is the command-line interface to the clinical text analysis
// pipeline: corrections, component extraction, reasoning analysis,
// validation, knowledge-graph queries, and an embedded API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/MedText-Intelligence/internal/bootstrap"
	"github.com/turtacn/MedText-Intelligence/internal/config"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Engines run with platform defaults and a silent logger so that command
	// output stays clean for piping; serve builds its own logging stack from
	// the config file.
	core, err := bootstrap.NewCore(config.NewDefaultConfig(), logging.NewNopLogger())
	if err != nil {
		fmt.Fprintln(os.Stderr, "medtext:", err)
		os.Exit(1)
	}
	defer core.Close()

	root := cli.NewRootCmd(cli.Deps{
		Service:   core.Service,
		Graph:     core.Graph,
		Logger:    core.Logger,
		ServeFunc: bootstrap.Run,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "medtext:", err)
		os.Exit(1)
	}
}

//Personal.AI order the ending
