package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pulsodoro/internal/control"
	"pulsodoro/internal/storage"

	"github.com/spf13/viper"
)

const defaultDialTimeout = 2 * time.Second

// cliConfig holds only what the control client needs.
type cliConfig struct {
	SocketPath  string        `mapstructure:"socket-path"`
	DialTimeout time.Duration `mapstructure:"dial-timeout"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("PULSODORO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("socket-path", control.DefaultSocketPath())
	v.SetDefault("dial-timeout", defaultDialTimeout)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if dir, err := storage.DefaultDir("pulsodoro"); err == nil {
		v.SetConfigFile(filepath.Join(dir, "config.yml"))
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
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}

	return cfg, nil
}
