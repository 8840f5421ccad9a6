package session

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"pulsodoro/internal/core/model"
	"pulsodoro/internal/core/timekeeper"
	"pulsodoro/internal/platform"
	"pulsodoro/internal/wallpaper"
)

const notificationTitle = "Pulsodoro"

// SettingsStore persists user preferences.
type SettingsStore interface {
	Save(settings model.Settings) error
}

// Wallpaper swaps the desktop background per interval.
type Wallpaper interface {
	ApplyState(state timekeeper.State, backgrounds wallpaper.Backgrounds) error
	Restore() error
}

// Player plays the transition chime.
type Player interface {
	Play(state timekeeper.State) error
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, message string)
}

// Autostarter toggles launching at login.
type Autostarter interface {
	SetAutostart(enabled bool) error
}

// Options wires optional collaborators. Nil fields are skipped.
type Options struct {
	Store     SettingsStore
	Wallpaper Wallpaper
	Player    Player
	Notifier  Notifier
	Autostart Autostarter
}

// Session owns the timer and the user settings, and reacts to transitions.
type Session struct {
	keeper  *timekeeper.TimeKeeper
	options Options

	mu                         sync.Mutex
	settings                   model.Settings
	wallpaperUnsupportedLogged bool
}

// New creates a session and applies settings durations to keeper.
func New(keeper *timekeeper.TimeKeeper, settings model.Settings, options Options) *Session {
	settings = settings.Normalized()
	keeper.SetDurations(settings.Durations())
	return &Session{
		keeper:   keeper,
		options:  options,
		settings: settings,
	}
}

// Start begins or resumes the timer.
func (session *Session) Start() timekeeper.Status {
	session.keeper.Start()
	return session.keeper.Status()
}

// Pause stops the countdown.
func (session *Session) Pause() timekeeper.Status {
	session.keeper.Pause()
	return session.keeper.Status()
}

// Toggle pauses a running timer and starts a stopped one.
func (session *Session) Toggle() timekeeper.Status {
	if session.keeper.Status().IsRunning {
		return session.Pause()
	}
	return session.Start()
}

// Reset returns the timer to idle.
func (session *Session) Reset() timekeeper.Status {
	session.keeper.Reset()
	return session.keeper.Status()
}

// Skip ends the current interval.
func (session *Session) Skip() timekeeper.Status {
	session.keeper.Skip()
	return session.keeper.Status()
}

// Status returns the timer snapshot.
func (session *Session) Status() timekeeper.Status {
	return session.keeper.Status()
}

// Settings returns the current preferences.
func (session *Session) Settings() model.Settings {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.settings
}

// SetDurations updates the interval lengths in minutes and persists them.
func (session *Session) SetDurations(focus, shortBreak, longBreak int) (timekeeper.Status, error) {
	if focus <= 0 || shortBreak <= 0 || longBreak <= 0 {
		return session.keeper.Status(), fmt.Errorf("durations must be positive: %d/%d/%d", focus, shortBreak, longBreak)
	}
	settings := session.Settings()
	settings.FocusMinutes = focus
	settings.ShortBreakMinutes = shortBreak
	settings.LongBreakMinutes = longBreak
	_, err := session.UpdateSettings(settings)
	return session.keeper.Status(), err
}

// UpdateSettings applies and persists new preferences.
// The settings are applied even when saving fails; the save error is returned.
func (session *Session) UpdateSettings(settings model.Settings) (model.Settings, error) {
	settings = settings.Normalized()

	session.mu.Lock()
	previous := session.settings
	session.settings = settings
	session.mu.Unlock()

	session.keeper.SetDurations(settings.Durations())

	if previous.ChangeWallpaper && !settings.ChangeWallpaper && session.options.Wallpaper != nil {
		if err := session.options.Wallpaper.Restore(); err != nil {
			log.Printf("wallpaper: %v", err)
		}
	}
	if settings.ChangeWallpaper && !previous.ChangeWallpaper {
		session.applyWallpaper(session.keeper.Status().State, settings)
	}

	if previous.LaunchAtLogin != settings.LaunchAtLogin && session.options.Autostart != nil {
		if err := session.options.Autostart.SetAutostart(settings.LaunchAtLogin); err != nil {
			log.Printf("autostart: %v", err)
		}
	}

	if session.options.Store == nil {
		return settings, nil
	}
	if err := session.options.Store.Save(settings); err != nil {
		return settings, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

// Watch consumes timer events until the channel closes, reacting to
// transitions and forwarding every event to onEvent.
func (session *Session) Watch(events <-chan timekeeper.Event, onEvent func(timekeeper.Event)) {
	for event := range events {
		if event.Type == timekeeper.EventTransition {
			session.handleTransition(event)
		}
		if onEvent != nil {
			onEvent(event)
		}
	}
}

// Shutdown restores the desktop wallpaper.
func (session *Session) Shutdown() {
	if session.options.Wallpaper == nil {
		return
	}
	if err := session.options.Wallpaper.Restore(); err != nil {
		log.Printf("wallpaper: %v", err)
	}
}

func (session *Session) handleTransition(event timekeeper.Event) {
	settings := session.Settings()

	if event.Entered == timekeeper.StateIdle {
		session.Shutdown()
	} else if settings.ChangeWallpaper {
		session.applyWallpaper(event.Entered, settings)
	}

	if settings.SoundEnabled && session.options.Player != nil {
		if err := session.options.Player.Play(event.Entered); err != nil {
			log.Printf("sound: %v", err)
		}
	}

	if session.options.Notifier != nil {
		session.options.Notifier.Notify(notificationTitle, event.Message)
	}
}

func (session *Session) applyWallpaper(state timekeeper.State, settings model.Settings) {
	if session.options.Wallpaper == nil {
		return
	}
	backgrounds := wallpaper.Backgrounds{Focus: settings.FocusBackground, Break: settings.BreakBackground}
	err := session.options.Wallpaper.ApplyState(state, backgrounds)
	if err == nil {
		return
	}
	if errors.Is(err, platform.ErrWallpaperUnsupported) {
		session.mu.Lock()
		logged := session.wallpaperUnsupportedLogged
		session.wallpaperUnsupportedLogged = true
		session.mu.Unlock()
		if logged {
			return
		}
	}
	log.Printf("wallpaper: %v", err)
}
