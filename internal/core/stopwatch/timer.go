package stopwatch

import "time"

// Clock supplies wall-clock time to the stopwatch.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time from the operating system.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Timer is the elapsed-time accumulator behind the timer screen.
// It is not safe for concurrent use; the caller owns the tick loop.
type Timer struct {
	state    State
	elapsed  time.Duration
	lastTick time.Time
}

// NewTimer returns a stopped timer at zero.
func NewTimer() *Timer {
	return &Timer{state: StateStopped}
}

// Toggle flips between stopped and running and returns the new state.
// Starting anchors a fresh tick cadence at now; stopping discards the
// partial interval since the last tick.
func (timer *Timer) Toggle(now time.Time) State {
	if timer.state == StateRunning {
		timer.Stop()
		return timer.state
	}
	timer.state = StateRunning
	timer.lastTick = now
	return timer.state
}

// Stop moves a running timer to stopped, keeping elapsed time.
func (timer *Timer) Stop() {
	timer.state = StateStopped
	timer.lastTick = time.Time{}
}

// Reset zeroes elapsed time without touching the running state.
func (timer *Timer) Reset() {
	timer.elapsed = 0
}

// Tick credits the wall-clock time since the previous tick.
// It reports whether elapsed time changed.
func (timer *Timer) Tick(now time.Time) bool {
	if timer.state != StateRunning {
		return false
	}
	delta := now.Sub(timer.lastTick)
	if delta <= 0 {
		return false
	}
	timer.elapsed += delta
	timer.lastTick = now
	return true
}

// State returns the current state.
func (timer *Timer) State() State {
	return timer.state
}

// Running reports whether ticks are being credited.
func (timer *Timer) Running() bool {
	return timer.state == StateRunning
}

// Elapsed returns the accumulated time.
func (timer *Timer) Elapsed() time.Duration {
	return timer.elapsed
}
