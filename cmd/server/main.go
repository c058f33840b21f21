// Command server runs the word-lookup HTTP service.
//
// Configuration comes from CONFIG_PATH / ./config.yaml / environment
// variables; see internal/config. The process stops gracefully on
// SIGINT or SIGTERM.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/grimoire-app/grimoire-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
