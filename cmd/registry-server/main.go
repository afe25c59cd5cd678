// Command registry-server runs the asset registry REST API.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml) overlaid by
// environment variables. SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/bullion-registry/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "registry-server: %v\n", err)
		os.Exit(1)
	}
}
