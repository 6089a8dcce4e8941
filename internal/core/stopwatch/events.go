package stopwatch

import "time"

// State represents the current stopwatch mode.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// EventType defines the type of stopwatch event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventReset       EventType = "reset"
)

// Event represents a stopwatch update for observers.
type Event struct {
	Type    EventType
	State   State
	Elapsed time.Duration
	At      time.Time
}

// ElapsedMillis returns the event's elapsed time in whole milliseconds.
func (event Event) ElapsedMillis() int64 {
	return event.Elapsed.Milliseconds()
}
