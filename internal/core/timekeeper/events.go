package timekeeper

import (
	"fmt"
	"time"
)

// State represents the current interval.
type State string

const (
	StateIdle       State = "idle"
	StateFocus      State = "focus"
	StateShortBreak State = "short_break"
	StateLongBreak  State = "long_break"
)

// IsBreak reports whether the state is a short or long break.
func (state State) IsBreak() bool {
	return state == StateShortBreak || state == StateLongBreak
}

// Label returns a human readable name.
func (state State) Label() string {
	switch state {
	case StateFocus:
		return "Focus"
	case StateShortBreak:
		return "Short Break"
	case StateLongBreak:
		return "Long Break"
	default:
		return "Ready"
	}
}

// Message returns the notification text shown when the state is entered.
func (state State) Message() string {
	switch state {
	case StateFocus:
		return "Focus time! Let's get to work."
	case StateShortBreak:
		return "Short break! Take a breather."
	case StateLongBreak:
		return "Long break! You've earned it."
	default:
		return "Timer stopped."
	}
}

// Status is a snapshot of the timer.
type Status struct {
	State            State `json:"state"`
	RemainingSeconds int   `json:"remaining_secs"`
	Cycle            int   `json:"cycle"`
	IsRunning        bool  `json:"is_running"`
}

// Remaining returns the remaining time as a duration.
func (status Status) Remaining() time.Duration {
	return time.Duration(status.RemainingSeconds) * time.Second
}

// Clock formats the remaining time as MM:SS.
func (status Status) Clock() string {
	seconds := status.RemainingSeconds
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStatus     EventType = "status"
	EventTransition EventType = "transition"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type   EventType
	Status Status
	// Entered is set on transition events.
	Entered State
	Message string
	At      time.Time
}
