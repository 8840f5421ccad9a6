package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrAutostartUnsupported is returned where no login mechanism is known.
var ErrAutostartUnsupported = errors.New("launch at login unsupported on this platform")

// LoginItem starts an executable when the user logs in.
type LoginItem struct {
	name     string
	execPath string
}

// NewLoginItem describes the running executable under name.
func NewLoginItem(name string) (*LoginItem, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return newLoginItem(name, execPath)
}

func newLoginItem(name, execPath string) (*LoginItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("login item: name is empty")
	}
	if execPath == "" {
		return nil, errors.New("login item: exec path is empty")
	}
	return &LoginItem{name: name, execPath: execPath}, nil
}

// SetAutostart adds or removes the login entry.
func (item *LoginItem) SetAutostart(enabled bool) error {
	if enabled {
		if err := item.install(); err != nil {
			return fmt.Errorf("enable launch at login: %w", err)
		}
		return nil
	}
	if err := item.remove(); err != nil {
		return fmt.Errorf("disable launch at login: %w", err)
	}
	return nil
}

// Enabled reports whether the login entry exists.
func (item *LoginItem) Enabled() (bool, error) {
	return item.installed()
}

// Sync makes the login entry match enabled, rewriting it when enabled so a
// moved executable is picked up.
func (item *LoginItem) Sync(enabled bool) error {
	if enabled {
		return item.SetAutostart(true)
	}
	present, err := item.installed()
	if err != nil || !present {
		return err
	}
	return item.SetAutostart(false)
}

// slug turns an app name into a file-name friendly identifier.
func slug(name string) string {
	value := strings.ToLower(strings.TrimSpace(name))
	value = strings.Join(strings.Fields(value), "-")
	if value == "" {
		return "pulsodoro"
	}
	return value
}
