package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/logger"
)

// TaskResetter re-arms the daily task list
type TaskResetter interface {
	ResetDailyTasks(ctx context.Context) domain.Outcome
}

// DailyResetWorker re-arms the daily tasks every day at a fixed local hour
type DailyResetWorker struct {
	tracker TaskResetter
	hour    int
	loc     *time.Location
	now     func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyResetWorker creates a worker resetting at hour:00 in loc
func NewDailyResetWorker(tracker TaskResetter, hour int, loc *time.Location) *DailyResetWorker {
	if loc == nil {
		loc = time.Local
	}
	return &DailyResetWorker{
		tracker:  tracker,
		hour:     hour,
		loc:      loc,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first reset
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms the timer for the next reset
func (w *DailyResetWorker) scheduleNext() {
	duration := timeUntilNextReset(w.now(), w.hour, w.loc)
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	// Stage 1 naps until shortly before the reset; stage 2 arms the precise timer
	if duration > StandbyThreshold {
		wait := duration - StandbyLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgDailyResetStandby, "next_check_at", w.now().In(w.loc).Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration, w.fire)
	log.Info(LogMsgDailyResetApproach, "next_reset_at", w.now().In(w.loc).Add(duration))
}

// fire runs the reset unless the timer went off early
func (w *DailyResetWorker) fire() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	// More than 23h left means the reset time has just passed
	rem := timeUntilNextReset(w.now(), w.hour, w.loc)
	if rem > JitterTolerance && rem < LateWindow {
		w.scheduleNext()
		return
	}

	w.executeReset()
	w.scheduleNext()
}

// executeReset performs the reset in a tracked goroutine
func (w *DailyResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgDailyResetStarting)

		out := w.tracker.ResetDailyTasks(ctx)
		log.Info(LogMsgDailyResetCompleted, "changed", out.Changed)
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight reset
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDailyResetShutdown)

	w.stopOnce.Do(func() {
		w.mu.Lock()
		close(w.shutdown)
		if w.timer != nil {
			w.timer.Stop()
			log.Info(LogMsgDailyResetCancelled)
		}
		w.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgDailyResetStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgDailyResetTimeout)
		return ctx.Err()
	}
}

// timeUntilNextReset is the duration from now until the next hour:00 in loc
func timeUntilNextReset(now time.Time, hour int, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}
