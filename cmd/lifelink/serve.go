package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"lifelink/internal/http/handlers"
	applog "lifelink/internal/log"
	"lifelink/internal/repos"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP API",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, db, closeAll, err := setup(true)
	if err != nil {
		return err
	}
	defer closeAll()

	app := handlers.NewApp(cfg, repos.NewStore(db))
	logger := applog.Logger()

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.Port).Info("Server running")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
