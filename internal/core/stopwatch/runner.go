package stopwatch

import (
	"sync"
	"time"
)

// DefaultTickInterval targets roughly sixty refreshes per second.
const DefaultTickInterval = 16 * time.Millisecond

// Config contains runtime options for Runner.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
}

// Runner drives a Timer from its own ticker goroutine and publishes
// events to observers.
type Runner struct {
	mu      sync.Mutex
	timer   *Timer
	options Config
	events  []chan Event
	stopCh  chan struct{}
	closed  bool
}

// NewRunner creates a stopped Runner with the provided options.
func NewRunner(options Config) *Runner {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}
	return &Runner{
		timer:   NewTimer(),
		options: options,
	}
}

// Subscribe registers a new observer channel.
func (runner *Runner) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		close(ch)
		return ch
	}
	runner.events = append(runner.events, ch)
	return ch
}

// Toggle starts or stops the ticking loop.
func (runner *Runner) Toggle() {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		return
	}

	now := runner.options.Clock.Now()
	state := runner.timer.Toggle(now)
	if state == StateRunning {
		runner.stopCh = make(chan struct{})
		go runner.run(runner.stopCh)
	} else {
		runner.stopLoopLocked()
	}

	runner.emitLocked(Event{
		Type:    EventStateChange,
		State:   state,
		Elapsed: runner.timer.Elapsed(),
		At:      now,
	})
}

// Reset zeroes elapsed time in either state.
func (runner *Runner) Reset() {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		return
	}
	runner.timer.Reset()
	runner.emitLocked(Event{
		Type:  EventReset,
		State: runner.timer.State(),
		At:    runner.options.Clock.Now(),
	})
}

// Snapshot returns the current state as a progress event.
func (runner *Runner) Snapshot() Event {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return Event{
		Type:    EventProgress,
		State:   runner.timer.State(),
		Elapsed: runner.timer.Elapsed(),
		At:      runner.options.Clock.Now(),
	}
}

// Close stops the timer and the loop, then closes every observer
// channel. No event is emitted for the final stop.
func (runner *Runner) Close() {
	runner.mu.Lock()
	if runner.closed {
		runner.mu.Unlock()
		return
	}
	runner.timer.Stop()
	runner.closed = true
	runner.stopLoopLocked()
	events := runner.events
	runner.events = nil
	runner.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (runner *Runner) run(stopCh chan struct{}) {
	ticker := time.NewTicker(runner.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			runner.tick(stopCh)
		}
	}
}

func (runner *Runner) tick(stopCh chan struct{}) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	// A loop from an earlier run may still deliver one tick after Toggle.
	if runner.closed || runner.stopCh != stopCh {
		return
	}

	now := runner.options.Clock.Now()
	if !runner.timer.Tick(now) {
		return
	}
	runner.emitLocked(Event{
		Type:    EventProgress,
		State:   runner.timer.State(),
		Elapsed: runner.timer.Elapsed(),
		At:      now,
	})
}

func (runner *Runner) stopLoopLocked() {
	if runner.stopCh != nil {
		close(runner.stopCh)
		runner.stopCh = nil
	}
}

// emitLocked never blocks. A slow observer loses its oldest queued
// event so the latest state always arrives.
func (runner *Runner) emitLocked(event Event) {
	for _, ch := range runner.events {
		select {
		case ch <- event:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}
