package tray

import (
	"fmt"

	"pulsodoro/internal/core/model"
	"pulsodoro/internal/core/timekeeper"
	"pulsodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Pulsodoro"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnToggle      func()
	OnReset       func()
	OnSkip        func()
	OnMusic       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	skipItem   *fyne.MenuItem
	callbacks  Callbacks
	iconName   string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Ready", nil)
	manager.statusItem.Disabled = true

	showItem := fyne.NewMenuItem("Show Timer", invoke(&manager.callbacks.OnShowTimer))
	manager.toggleItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggle))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset))
	manager.skipItem = fyne.NewMenuItem("Skip", invoke(&manager.callbacks.OnSkip))
	music := fyne.NewMenuItem("Play Music", invoke(&manager.callbacks.OnMusic))
	preferences := fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences))
	quit := fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	quit.IsQuit = true

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		showItem,
		manager.toggleItem,
		manager.resetItem,
		manager.skipItem,
		fyne.NewMenuItemSeparator(),
		music,
		preferences,
		quit,
	)

	manager.SetStatus(timekeeper.Status{State: timekeeper.StateIdle, Cycle: 1})
	return manager
}

// SetStatus updates the menu labels and icon from a timer snapshot.
func (manager *Manager) SetStatus(status timekeeper.Status) {
	manager.statusItem.Label = statusLine(status)
	manager.toggleItem.Label = toggleLabel(status)
	manager.resetItem.Disabled = status.State == timekeeper.StateIdle
	manager.skipItem.Disabled = status.State == timekeeper.StateIdle

	if manager.app == nil {
		return
	}
	if name := iconFor(status.State); name != manager.iconName {
		manager.iconName = name
		manager.app.SetSystemTrayIcon(resources.MustIcon(name))
	}
	manager.app.SetSystemTrayMenu(manager.menu)
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

func statusLine(status timekeeper.Status) string {
	if status.State == timekeeper.StateIdle {
		return "Ready"
	}
	line := fmt.Sprintf("%s %s  (%d/%d)", status.State.Label(), status.Clock(), status.Cycle, model.CyclesBeforeLongBreak)
	if !status.IsRunning {
		line += " paused"
	}
	return line
}

func toggleLabel(status timekeeper.Status) string {
	switch {
	case status.IsRunning:
		return "Pause"
	case status.State == timekeeper.StateIdle:
		return "Start"
	default:
		return "Resume"
	}
}

func iconFor(state timekeeper.State) string {
	switch {
	case state == timekeeper.StateFocus:
		return "focus.svg"
	case state.IsBreak():
		return "break.svg"
	default:
		return "idle.svg"
	}
}
