package stopwatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(delta)
	clock.mu.Unlock()
}

// newTestRunner uses an interval long enough that the ticker goroutine
// never fires during a test; ticks are delivered by hand.
func newTestRunner() (*Runner, *fakeClock) {
	clock := &fakeClock{now: epoch}
	return NewRunner(Config{TickInterval: time.Hour, Clock: clock}), clock
}

func currentLoop(runner *Runner) chan struct{} {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.stopCh
}

func TestRunnerDefaults(t *testing.T) {
	runner := NewRunner(Config{})
	defer runner.Close()
	assert.Equal(t, DefaultTickInterval, runner.options.TickInterval)
	assert.IsType(t, SystemClock{}, runner.options.Clock)
}

func TestRunnerToggleEmitsStateChanges(t *testing.T) {
	runner, _ := newTestRunner()
	defer runner.Close()
	events := runner.Subscribe(4)

	runner.Toggle()
	event := <-events
	assert.Equal(t, EventStateChange, event.Type)
	assert.Equal(t, StateRunning, event.State)
	require.NotNil(t, currentLoop(runner))

	runner.Toggle()
	event = <-events
	assert.Equal(t, StateStopped, event.State)
	assert.Nil(t, currentLoop(runner))
}

func TestRunnerTickAccumulates(t *testing.T) {
	runner, clock := newTestRunner()
	defer runner.Close()
	events := runner.Subscribe(8)

	runner.Toggle()
	<-events
	loop := currentLoop(runner)

	clock.Advance(16 * time.Millisecond)
	runner.tick(loop)
	clock.Advance(34 * time.Millisecond)
	runner.tick(loop)

	first := <-events
	second := <-events
	assert.Equal(t, EventProgress, first.Type)
	assert.Equal(t, int64(16), first.ElapsedMillis())
	assert.Equal(t, int64(50), second.ElapsedMillis())
	assert.Equal(t, 50*time.Millisecond, runner.Snapshot().Elapsed)
}

func TestRunnerDropsTickFromStoppedLoop(t *testing.T) {
	runner, clock := newTestRunner()
	defer runner.Close()

	runner.Toggle()
	stale := currentLoop(runner)
	clock.Advance(10 * time.Millisecond)
	runner.tick(stale)
	runner.Toggle()

	clock.Advance(time.Second)
	runner.tick(stale)
	assert.Equal(t, 10*time.Millisecond, runner.Snapshot().Elapsed)

	// A restarted run must not honour ticks addressed to the old loop.
	runner.Toggle()
	clock.Advance(time.Second)
	runner.tick(stale)
	assert.Equal(t, 10*time.Millisecond, runner.Snapshot().Elapsed)

	runner.tick(currentLoop(runner))
	assert.Equal(t, time.Second+10*time.Millisecond, runner.Snapshot().Elapsed)
}

func TestRunnerReset(t *testing.T) {
	runner, clock := newTestRunner()
	defer runner.Close()
	events := runner.Subscribe(8)

	runner.Toggle()
	clock.Advance(time.Minute)
	runner.tick(currentLoop(runner))
	runner.Toggle()
	runner.Reset()
	runner.Reset()

	var last Event
	for i := 0; i < 5; i++ {
		last = <-events
	}
	assert.Equal(t, EventReset, last.Type)
	assert.Equal(t, StateStopped, last.State)
	assert.Zero(t, runner.Snapshot().Elapsed)
}

func TestRunnerCloseClosesObservers(t *testing.T) {
	runner, _ := newTestRunner()
	events := runner.Subscribe(1)
	runner.Toggle()
	<-events

	runner.Close()
	runner.Close()

	_, open := <-events
	assert.False(t, open)
	assert.Nil(t, currentLoop(runner))

	runner.Toggle()
	assert.Equal(t, StateStopped, runner.Snapshot().State)

	late := runner.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestRunnerCloseStopsRunningTimer(t *testing.T) {
	runner, clock := newTestRunner()
	events := runner.Subscribe(4)
	runner.Toggle()
	clock.Advance(2 * time.Second)
	runner.tick(currentLoop(runner))
	<-events
	<-events

	runner.Close()

	snapshot := runner.Snapshot()
	assert.Equal(t, StateStopped, snapshot.State)
	assert.Equal(t, 2*time.Second, snapshot.Elapsed)
	_, open := <-events
	assert.False(t, open, "closing emits no final event")
}

func TestRunnerSlowObserverGetsLatestEvent(t *testing.T) {
	runner, _ := newTestRunner()
	defer runner.Close()
	events := runner.Subscribe(1)

	runner.Toggle()
	runner.Toggle()
	runner.Reset()

	event := <-events
	assert.Equal(t, EventReset, event.Type)
	assert.Equal(t, StateStopped, event.State)
	assert.Empty(t, events)
}

func TestRunnerLoopTicksWithRealClock(t *testing.T) {
	runner := NewRunner(Config{TickInterval: 5 * time.Millisecond})
	defer runner.Close()

	runner.Toggle()
	require.Eventually(t, func() bool {
		return runner.Snapshot().Elapsed >= 20*time.Millisecond
	}, 2*time.Second, 5*time.Millisecond)

	runner.Toggle()
	frozen := runner.Snapshot().Elapsed
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, frozen, runner.Snapshot().Elapsed)
}
