package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/JobHunter_Go/internal/logger"
	"github.com/osse101/JobHunter_Go/internal/worker"
)

// Enqueuer accepts jobs for asynchronous execution
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler feeds recurring jobs into a worker pool
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues job once right away and then every interval until Stop.
// A tick is skipped when the pool queue is full.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log := logger.FromContext(context.Background()).With("job", name)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.enqueue(log, job)
		for {
			select {
			case <-ticker.C:
				s.enqueue(log, job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(log *slog.Logger, job worker.Job) {
	if !s.pool.Enqueue(job) {
		log.Debug(LogMsgTickSkipped)
	}
}

// Stop stops all scheduled jobs. Safe to call twice.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
