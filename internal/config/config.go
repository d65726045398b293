// Package config loads QuizBuddy settings from an optional config.yaml
// and QUIZBUDDY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Backend selection values.
const (
	BackendAuto   = "auto"
	BackendRemote = "remote"
	BackendLocal  = "local"
)

// Config holds application-level settings. LLM provider settings are
// read separately from their own environment variables.
type Config struct {
	API struct {
		BaseURL string
		Token   string
	}
	Backend   string
	Questions int
}

// Load reads configuration with the following precedence: environment
// variables, then the file at overridePath (or config.yaml in the XDG
// config dir when empty), then defaults. A missing config file is not
// an error.
func Load(overridePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if overridePath != "" {
		v.SetConfigFile(overridePath)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("QUIZBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("backend", BackendAuto)
	v.SetDefault("questions", 5)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		// A missing default config is fine; an explicit one must exist.
		if !missing || overridePath != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	cfg.API.BaseURL = v.GetString("api.base_url")
	cfg.API.Token = v.GetString("api.token")
	cfg.Backend = v.GetString("backend")
	cfg.Questions = v.GetInt("questions")

	switch cfg.Backend {
	case BackendAuto, BackendRemote, BackendLocal:
	default:
		return nil, fmt.Errorf("unknown backend %q (want auto, remote, or local)", cfg.Backend)
	}
	if cfg.Backend == BackendRemote && cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("backend is remote but api.base_url is not set")
	}

	return &cfg, nil
}

// UseRemote reports whether the remote API backend should serve quiz
// operations under the current settings.
func (c *Config) UseRemote() bool {
	if c.Backend == BackendRemote {
		return true
	}
	return c.Backend == BackendAuto && c.API.BaseURL != ""
}

// configDir resolves $XDG_CONFIG_HOME/quizbuddy, falling back to
// ~/.config/quizbuddy.
func configDir() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "quizbuddy"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "quizbuddy"), nil
}
