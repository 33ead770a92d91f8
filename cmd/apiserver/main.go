// API server entry point for MedText-Intelligence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/MedText-Intelligence/internal/bootstrap"
)

func main() {
	configFile := flag.String("config", "",
		"path to the configuration file (empty: MEDTEXT_* environment variables only)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx, *configFile); err != nil {
		fmt.Fprintln(os.Stderr, "apiserver:", err)
		os.Exit(1)
	}
}

//Personal.AI order the ending
