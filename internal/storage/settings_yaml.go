package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pulsodoro/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes      int    `yaml:"focus_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	ChangeWallpaper   bool   `yaml:"change_wallpaper"`
	FocusBackground   string `yaml:"focus_background"`
	BreakBackground   string `yaml:"break_background"`
	SoundEnabled      bool   `yaml:"sound_enabled"`
	CustomMediaID     string `yaml:"custom_media_id"`
	AlwaysOnTop       bool   `yaml:"always_on_top"`
	LaunchAtLogin     bool   `yaml:"launch_at_login"`
}

// Store persists user preferences as YAML in a config directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-user config directory for appName.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return filepath.Join(store.dir, settingsFileName)
}

// Load reads user preferences from YAML.
// Missing files yield defaults. Missing, mistyped or out-of-range fields are
// replaced by defaults; a file that is not valid YAML yields defaults together
// with the parse error.
func (store *Store) Load() (model.Settings, error) {
	defaults := model.DefaultSettings()

	rawData, err := os.ReadFile(store.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("read settings file: %w", err)
	}

	fileData := toYaml(defaults)
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		// Mistyped fields keep their defaults; everything else still decodes.
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return defaults, fmt.Errorf("parse settings yaml: %w", err)
		}
		log.Printf("settings: %s: %v", store.Path(), typeErr)
	}

	return fromYaml(fileData).Normalized(), nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings model.Settings) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(toYaml(settings))
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	tmpPath := store.Path() + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmpPath, store.Path()); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

func toYaml(settings model.Settings) yamlSettings {
	return yamlSettings{
		FocusMinutes:      settings.FocusMinutes,
		ShortBreakMinutes: settings.ShortBreakMinutes,
		LongBreakMinutes:  settings.LongBreakMinutes,
		ChangeWallpaper:   settings.ChangeWallpaper,
		FocusBackground:   settings.FocusBackground,
		BreakBackground:   settings.BreakBackground,
		SoundEnabled:      settings.SoundEnabled,
		CustomMediaID:     settings.CustomMediaID,
		AlwaysOnTop:       settings.AlwaysOnTop,
		LaunchAtLogin:     settings.LaunchAtLogin,
	}
}

func fromYaml(fileData yamlSettings) model.Settings {
	return model.Settings{
		FocusMinutes:      fileData.FocusMinutes,
		ShortBreakMinutes: fileData.ShortBreakMinutes,
		LongBreakMinutes:  fileData.LongBreakMinutes,
		ChangeWallpaper:   fileData.ChangeWallpaper,
		FocusBackground:   fileData.FocusBackground,
		BreakBackground:   fileData.BreakBackground,
		SoundEnabled:      fileData.SoundEnabled,
		CustomMediaID:     fileData.CustomMediaID,
		AlwaysOnTop:       fileData.AlwaysOnTop,
		LaunchAtLogin:     fileData.LaunchAtLogin,
	}
}
