package model

import "time"

// CyclesBeforeLongBreak is the number of focus intervals completed before a long break.
const CyclesBeforeLongBreak = 4

// Durations holds the configured length of each interval.
type Durations struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns the classic 25/5/15 schedule.
func DefaultDurations() Durations {
	return Durations{
		Focus:      25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// DurationsFromMinutes converts whole minute counts to Durations.
func DurationsFromMinutes(focus, shortBreak, longBreak int) Durations {
	return Durations{
		Focus:      time.Duration(focus) * time.Minute,
		ShortBreak: time.Duration(shortBreak) * time.Minute,
		LongBreak:  time.Duration(longBreak) * time.Minute,
	}
}

// Seconds truncates a duration to whole seconds.
func Seconds(value time.Duration) int {
	if value <= 0 {
		return 0
	}
	return int(value / time.Second)
}
