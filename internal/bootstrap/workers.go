package bootstrap

import (
	"github.com/osse101/JobHunter_Go/internal/config"
	"github.com/osse101/JobHunter_Go/internal/scheduler"
	"github.com/osse101/JobHunter_Go/internal/sse"
	"github.com/osse101/JobHunter_Go/internal/tracker"
	"github.com/osse101/JobHunter_Go/internal/worker"
)

// Workers holds the running background machinery
type Workers struct {
	Pool       *worker.Pool
	Scheduler  *scheduler.Scheduler
	DailyReset *worker.DailyResetWorker
}

// StartWorkers starts the job pool, the follow-up sweep and the daily reset timer
func StartWorkers(cfg *config.Config, svc tracker.Service, hub *sse.Hub) *Workers {
	pool := worker.NewPool(cfg.WorkerCount, JobQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(JobNameFollowUpReminder, cfg.FollowUpCheckInterval, worker.NewFollowUpReminder(svc, hub))

	daily := worker.NewDailyResetWorker(svc, cfg.DailyResetHour, cfg.Location())
	daily.Start()

	return &Workers{
		Pool:       pool,
		Scheduler:  sched,
		DailyReset: daily,
	}
}
