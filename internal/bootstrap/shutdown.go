package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/JobHunter_Go/internal/scheduler"
	"github.com/osse101/JobHunter_Go/internal/server"
	"github.com/osse101/JobHunter_Go/internal/sse"
	"github.com/osse101/JobHunter_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server           *server.Server
	Scheduler        *scheduler.Scheduler
	Pool             *worker.Pool
	DailyResetWorker *worker.DailyResetWorker
	Hub              *sse.Hub
	Storage          *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Timers and background jobs (nothing new touches the tracker)
// 3. SSE hub (close client streams)
// 4. Database
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.DailyResetWorker != nil {
		if err := c.DailyResetWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgDailyResetFailed, "error", err)
		}
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Storage != nil {
		if err := c.Storage.DB.Close(); err != nil {
			slog.Error(LogMsgDatabaseCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
