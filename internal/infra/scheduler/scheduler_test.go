package scheduler

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingRunner counts cycles and how many run at once.
type trackingRunner struct {
	mu          sync.Mutex
	calls       int
	inFlight    int
	maxInFlight int
	block       time.Duration
}

func (r *trackingRunner) RunCycle(_ context.Context) {
	r.mu.Lock()
	r.calls++
	r.inFlight++
	if r.inFlight > r.maxInFlight {
		r.maxInFlight = r.inFlight
	}
	r.mu.Unlock()

	time.Sleep(r.block)

	r.mu.Lock()
	r.inFlight--
	r.mu.Unlock()
}

func (r *trackingRunner) snapshot() (calls, inFlight, maxInFlight int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls, r.inFlight, r.maxInFlight
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestStart_FirstCycleFiresImmediately(t *testing.T) {
	runner := &trackingRunner{}
	s := NewPollScheduler(runner, newTestLogger(), time.Hour)

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool {
		calls, _, _ := runner.snapshot()
		return calls == 1
	}, 2*time.Second, 10*time.Millisecond, "first cycle must not wait for the interval")
}

func TestCyclesNeverOverlap(t *testing.T) {
	// Cycles outlast the interval, so the cron ticks during a running cycle
	// must be skipped rather than run concurrently with it.
	runner := &trackingRunner{block: 1500 * time.Millisecond}
	s := NewPollScheduler(runner, newTestLogger(), time.Second)

	s.Start()
	require.Eventually(t, func() bool {
		calls, _, _ := runner.snapshot()
		return calls >= 2
	}, 6*time.Second, 20*time.Millisecond, "a later tick must still fire once the cycle finishes")
	s.Stop()

	_, _, maxInFlight := runner.snapshot()
	assert.Equal(t, 1, maxInFlight, "cycles must run strictly sequentially")
}

func TestStop_WaitsForRunningCycle(t *testing.T) {
	runner := &trackingRunner{block: 300 * time.Millisecond}
	s := NewPollScheduler(runner, newTestLogger(), time.Hour)

	s.Start()
	require.Eventually(t, func() bool {
		calls, _, _ := runner.snapshot()
		return calls == 1
	}, 2*time.Second, 10*time.Millisecond)

	s.Stop()

	_, inFlight, _ := runner.snapshot()
	assert.Zero(t, inFlight, "Stop must not return while a cycle is still running")
}
