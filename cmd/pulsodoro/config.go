package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pulsodoro/internal/control"
	"pulsodoro/internal/storage"

	"github.com/spf13/viper"
)

const (
	appDirName          = "pulsodoro"
	defaultTickInterval = time.Second
)

// appConfig is runtime configuration for the desktop process.
// User-editable timer preferences live in settings.yaml instead.
type appConfig struct {
	ConfigDir      string        `mapstructure:"config-dir"`
	SocketPath     string        `mapstructure:"socket-path"`
	ControlEnabled bool          `mapstructure:"control-enabled"`
	TickInterval   time.Duration `mapstructure:"tick-interval"`
	LogFile        string        `mapstructure:"log-file"`
	ConfigPath     string        `mapstructure:"-"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	defaultDir, err := storage.DefaultDir(appDirName)
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetEnvPrefix("PULSODORO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("config-dir", defaultDir)
	v.SetDefault("socket-path", control.DefaultSocketPath())
	v.SetDefault("control-enabled", true)
	v.SetDefault("tick-interval", defaultTickInterval)
	v.SetDefault("log-file", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(defaultDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("invalid tick-interval: %s", cfg.TickInterval)
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = defaultDir
	}

	return cfg, nil
}
