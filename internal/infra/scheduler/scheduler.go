package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CycleRunner runs one poll cycle. *app.WatcherService satisfies it.
type CycleRunner interface {
	RunCycle(ctx context.Context)
}

// PollScheduler drives the watcher on a fixed cadence. The wait between
// cycles is unconditional: it holds on success and failure alike, so a
// persistently failing upstream never turns into a busy loop.
type PollScheduler struct {
	cronEngine *cron.Cron
	job        cron.Job
	logger     *logrus.Logger
	interval   time.Duration
	wg         sync.WaitGroup
}

func NewPollScheduler(
	watcher CycleRunner,
	logger *logrus.Logger,
	interval time.Duration, // e.g. 600s, the upstream-recommended retry period
) *PollScheduler {
	// One wrapped job shared by the cron schedule and the immediate first
	// run, so the overlap guard covers both.
	chain := cron.NewChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger)))
	job := chain.Then(cron.FuncJob(func() {
		logger.Debug("Poll cycle triggered.")
		watcher.RunCycle(context.Background())
	}))

	return &PollScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		job:        job,
		logger:     logger,
		interval:   interval,
	}
}

// Start schedules poll cycles on the configured interval and fires the first
// cycle immediately; @every would otherwise wait one full interval before
// the initial poll. SkipIfStillRunning keeps cycles strictly sequential,
// including against the first run.
func (s *PollScheduler) Start() {
	s.logger.Info("Starting poll scheduler...")

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cronEngine.AddJob(spec, s.job); err != nil {
		s.logger.Fatalf("FATAL: Could not add poll cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Infof("Poll scheduler started, interval %s.", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.job.Run()
	}()
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops new runs, waits for a running cycle.
	<-ctx.Done()               // Wait for graceful shutdown
	s.wg.Wait()                // The first run is not a cron job; wait for it too.
	s.logger.Info("Poll scheduler gracefully stopped.")
}
