package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"reco/cmd"

	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP API and the notification retry job",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger()

	config, err := cmd.LoadConfig(cCtx.String("env-file"))
	if err != nil {
		return err
	}
	if err := config.ValidateServer(); err != nil {
		return err
	}

	db, err := cmd.OpenDatabase(ctx, config)
	if err != nil {
		return err
	}
	defer func() { _ = cmd.CloseDatabase(db) }()

	root := cmd.NewCompositionRoot(config, logger, db)
	if err := root.WithStorage(ctx); err != nil {
		return err
	}

	e, err := root.CreateRouter()
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	go func() {
		logger.Info("Server starting", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%d", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
