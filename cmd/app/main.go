package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/JobHunter_Go/internal/bootstrap"
	"github.com/osse101/JobHunter_Go/internal/config"
	"github.com/osse101/JobHunter_Go/internal/server"
	"github.com/osse101/JobHunter_Go/internal/sse"
)

// @title JobHunter API
// @version 1.0
// @description Gamified job-search tracker: applications, networking contacts, daily tasks and XP.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jobhunter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := sse.NewHub()
	hub.Start()

	bus, err := bootstrap.InitializeEventSystem(hub)
	if err != nil {
		hub.Stop()
		return err
	}

	storage, err := bootstrap.InitializeStorage(cfg)
	if err != nil {
		hub.Stop()
		return err
	}

	svc, err := bootstrap.InitializeTracker(ctx, cfg, storage, bus)
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Hub: hub, Storage: storage})
		return err
	}

	workers := bootstrap.StartWorkers(cfg, svc, hub)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		Location:       cfg.Location(),
	}, storage.DB, svc, hub)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:           srv,
			Scheduler:        workers.Scheduler,
			Pool:             workers.Pool,
			DailyResetWorker: workers.DailyReset,
			Hub:              hub,
			Storage:          storage,
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server exited with error", "error", err)
		return err
	}
	return nil
}
