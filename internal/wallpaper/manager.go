package wallpaper

import (
	"errors"
	"fmt"
	"sync"

	"pulsodoro/internal/core/timekeeper"
	"pulsodoro/internal/platform"
)

// Backgrounds holds the user-selected image per interval kind.
type Backgrounds struct {
	Focus string
	Break string
}

// PathFor returns the image configured for state, or "" when none applies.
func (backgrounds Backgrounds) PathFor(state timekeeper.State) string {
	switch {
	case state == timekeeper.StateFocus:
		return backgrounds.Focus
	case state.IsBreak():
		return backgrounds.Break
	default:
		return ""
	}
}

// Manager swaps the desktop wallpaper per interval and restores the original one.
type Manager struct {
	mu       sync.Mutex
	setter   platform.WallpaperSetter
	original string
	current  string
}

// New captures the current wallpaper so it can be restored later.
func New(setter platform.WallpaperSetter) *Manager {
	manager := &Manager{setter: setter}
	if original, err := setter.Current(); err == nil {
		manager.original = original
	}
	return manager
}

// Original returns the wallpaper captured at startup.
func (manager *Manager) Original() string {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.original
}

// ApplyState sets the wallpaper for state. Idle, and any state without a
// configured image, restores the original wallpaper.
func (manager *Manager) ApplyState(state timekeeper.State, backgrounds Backgrounds) error {
	path := backgrounds.PathFor(state)
	if path == "" {
		return manager.Restore()
	}
	return manager.set(path)
}

// Restore puts back the wallpaper captured at startup, if any was changed.
func (manager *Manager) Restore() error {
	manager.mu.Lock()
	original := manager.original
	changed := manager.current != ""
	manager.mu.Unlock()

	if !changed || original == "" {
		return nil
	}
	if err := manager.setter.Set(original); err != nil {
		return fmt.Errorf("restore wallpaper: %w", err)
	}

	manager.mu.Lock()
	manager.current = ""
	manager.mu.Unlock()
	return nil
}

func (manager *Manager) set(path string) error {
	manager.mu.Lock()
	if manager.current == path {
		manager.mu.Unlock()
		return nil
	}
	manager.mu.Unlock()

	if err := manager.setter.Set(path); err != nil {
		if errors.Is(err, platform.ErrWallpaperUnsupported) {
			return err
		}
		return fmt.Errorf("set wallpaper %s: %w", path, err)
	}

	manager.mu.Lock()
	manager.current = path
	manager.mu.Unlock()
	return nil
}
