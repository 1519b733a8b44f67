// Command reset wipes all tracker progress in the configured database.
//
// Usage:
//
//	go run ./cmd/reset -yes
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/JobHunter_Go/internal/bootstrap"
	"github.com/osse101/JobHunter_Go/internal/config"
)

func main() {
	confirm := flag.Bool("yes", false, "confirm the reset without prompting")
	flag.Parse()

	if err := run(*confirm); err != nil {
		fmt.Fprintf(os.Stderr, "reset: %v\n", err)
		os.Exit(1)
	}
}

func run(confirm bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("refusing to reset %s without -yes", cfg.DBPath)
	}

	cfg.LogDir = ""
	if _, err := bootstrap.SetupLogger(cfg); err != nil {
		return err
	}

	ctx := context.Background()
	storage, err := bootstrap.InitializeStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.DB.Close()

	svc, err := bootstrap.InitializeTracker(ctx, cfg, storage, nil)
	if err != nil {
		return err
	}

	out := svc.ResetAll(ctx)
	st := svc.Snapshot(ctx)
	slog.Info("Tracker reset complete",
		"db_path", cfg.DBPath,
		"changed", out.Changed,
		"level", st.Level,
		"xp", st.XP)
	return nil
}
