package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/niksmo/jubilant/config"
	"github.com/niksmo/jubilant/internal/app"
	"github.com/niksmo/jubilant/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, stop := sigctx.NotifyContext()
	defer stop()

	cfg := config.Load()
	cfg.Print()

	catalogApp := app.New(sigCtx, cfg)
	slog.Info("catalog backend started",
		"addr", cfg.HTTPServerAddr,
		"shortlist", cfg.Shortlist.Backend,
		"events", cfg.Broker.Enabled(),
	)

	catalogApp.Run(stop)

	<-sigCtx.Done()
	slog.Info("shutting down", "timeout", closeTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	catalogApp.Close(ctx)
	slog.Info("catalog backend stopped")
}
