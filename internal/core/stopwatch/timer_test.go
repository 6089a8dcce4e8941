package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

func TestTimerStartsStopped(t *testing.T) {
	timer := NewTimer()
	assert.Equal(t, StateStopped, timer.State())
	assert.False(t, timer.Running())
	assert.Zero(t, timer.Elapsed())
}

func TestTimerToggleTwiceRestoresState(t *testing.T) {
	timer := NewTimer()
	timer.Toggle(epoch)
	require.True(t, timer.Running())
	timer.Toggle(epoch.Add(time.Second))
	assert.Equal(t, StateStopped, timer.State())

	timer.Toggle(epoch.Add(2 * time.Second))
	timer.Toggle(epoch.Add(3 * time.Second))
	assert.False(t, timer.Running())
}

func TestTimerTicksCreditWallClockDeltas(t *testing.T) {
	timer := NewTimer()
	timer.Toggle(epoch)

	now := epoch
	previous := timer.Elapsed()
	// Uneven gaps simulate a loaded UI thread.
	for _, gap := range []time.Duration{16, 16, 250, 3, 40} {
		now = now.Add(gap * time.Millisecond)
		require.True(t, timer.Tick(now))
		assert.Greater(t, timer.Elapsed(), previous)
		previous = timer.Elapsed()
	}
	assert.Equal(t, 325*time.Millisecond, timer.Elapsed())
}

func TestTimerIgnoresTicksWhileStopped(t *testing.T) {
	timer := NewTimer()
	assert.False(t, timer.Tick(epoch.Add(time.Minute)))
	assert.Zero(t, timer.Elapsed())

	timer.Toggle(epoch)
	timer.Tick(epoch.Add(100 * time.Millisecond))
	timer.Toggle(epoch.Add(150 * time.Millisecond))

	frozen := timer.Elapsed()
	assert.Equal(t, 100*time.Millisecond, frozen)
	for i := 1; i <= 5; i++ {
		assert.False(t, timer.Tick(epoch.Add(time.Duration(i)*time.Second)))
	}
	assert.Equal(t, frozen, timer.Elapsed())
}

func TestTimerResumeStartsFreshCadence(t *testing.T) {
	timer := NewTimer()
	timer.Toggle(epoch)
	timer.Tick(epoch.Add(time.Second))
	timer.Toggle(epoch.Add(time.Second + 10*time.Millisecond))

	restart := epoch.Add(time.Hour)
	timer.Toggle(restart)
	timer.Tick(restart.Add(16 * time.Millisecond))

	assert.Equal(t, time.Second+16*time.Millisecond, timer.Elapsed())
}

func TestTimerIgnoresNonAdvancingClock(t *testing.T) {
	timer := NewTimer()
	timer.Toggle(epoch)
	assert.False(t, timer.Tick(epoch))
	assert.False(t, timer.Tick(epoch.Add(-time.Second)))
	assert.Zero(t, timer.Elapsed())
}

func TestTimerResetIsIdempotent(t *testing.T) {
	timer := NewTimer()
	timer.Toggle(epoch)
	timer.Tick(epoch.Add(5 * time.Second))
	timer.Toggle(epoch.Add(5 * time.Second))

	timer.Reset()
	assert.Zero(t, timer.Elapsed())
	timer.Reset()
	assert.Zero(t, timer.Elapsed())
	assert.Equal(t, StateStopped, timer.State())
}

func TestTimerResetWhileRunningKeepsRunning(t *testing.T) {
	timer := NewTimer()
	timer.Toggle(epoch)
	timer.Tick(epoch.Add(time.Minute))

	timer.Reset()
	assert.True(t, timer.Running())
	assert.Zero(t, timer.Elapsed())

	timer.Tick(epoch.Add(time.Minute + 20*time.Millisecond))
	assert.Equal(t, 20*time.Millisecond, timer.Elapsed())
}

func TestTimerStopKeepsElapsed(t *testing.T) {
	timer := NewTimer()
	timer.Toggle(epoch)
	timer.Tick(epoch.Add(3 * time.Second))

	timer.Stop()
	assert.Equal(t, StateStopped, timer.State())
	assert.Equal(t, 3*time.Second, timer.Elapsed())
	assert.False(t, timer.Tick(epoch.Add(time.Hour)))

	timer.Stop()
	assert.Equal(t, StateStopped, timer.State())
}
