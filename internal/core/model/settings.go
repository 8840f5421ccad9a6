package model

// MaxMinutes is the longest interval a setting may hold.
const MaxMinutes = 240

// Settings defines editable user preferences.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int

	ChangeWallpaper bool
	FocusBackground string
	BreakBackground string

	SoundEnabled  bool
	CustomMediaID string
	AlwaysOnTop   bool
	LaunchAtLogin bool
}

// DefaultSettings returns default settings for Pulsodoro.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		SoundEnabled:      true,
	}
}

// Durations converts the minute counts to timer durations.
func (settings Settings) Durations() Durations {
	return DurationsFromMinutes(settings.FocusMinutes, settings.ShortBreakMinutes, settings.LongBreakMinutes)
}

// Normalized replaces out of range minute counts with defaults.
func (settings Settings) Normalized() Settings {
	defaults := DefaultSettings()
	if !validMinutes(settings.FocusMinutes) {
		settings.FocusMinutes = defaults.FocusMinutes
	}
	if !validMinutes(settings.ShortBreakMinutes) {
		settings.ShortBreakMinutes = defaults.ShortBreakMinutes
	}
	if !validMinutes(settings.LongBreakMinutes) {
		settings.LongBreakMinutes = defaults.LongBreakMinutes
	}
	return settings
}

func validMinutes(value int) bool {
	return value > 0 && value <= MaxMinutes
}
