package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/devops-project/server/internal/config"
	"codeberg.org/devops-project/server/internal/logger"
	"codeberg.org/devops-project/server/internal/tracing"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
)

// @title devops-project API
// @version 1.0
// @description Status and health endpoints for the devops-project service

// @contact.name API Support
// @contact.url https://codeberg.org/devops-project/server

// @BasePath /

// set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

const serviceName = "devops-project"

func main() {
	cmd := &cli.Command{
		Name:    serviceName,
		Usage:   "serve the devops-project status and health endpoints",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "interface to bind, overrides ADDR",
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "port to listen on, overrides PORT",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, config.Flags{
				Addr: cmd.String("addr"),
				Port: cmd.String("port"),
			})
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.FatalErr(err, "server exited")
	}
}

func run(ctx context.Context, flags config.Flags) error {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		return err
	}

	if err := cfg.ApplyFlags(flags); err != nil {
		return err
	}

	logger.Configure(cfg.Environment, cfg.LogLevel)
	logger.Info("starting server", "version", Version, "environment", cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := tracing.Initialize(ctx, tracing.Options{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Exporter:       cfg.TracingExporter,
		Endpoint:       cfg.OTLPEndpoint,
	})
	if err != nil {
		return err
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(ctx); err != nil {
			logger.ErrorErr(err, "failed to flush traces")
		}
	}()

	srv, err := NewServer(cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddress(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.ErrorErr(err, "server forced to shutdown")
		return err
	}

	logger.Info("server stopped")

	return nil
}
