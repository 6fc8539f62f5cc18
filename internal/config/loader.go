package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// MaxLivesLimit caps SHINYPATH_MAX_LIVES at the starting life count.
const MaxLivesLimit = 3

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first; variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	} else {
		logrus.Debugf("loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	if cfg.LogFile == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		cfg.LogFile = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MaxLives < 1 || c.MaxLives > MaxLivesLimit {
		return fmt.Errorf("invalid SHINYPATH_MAX_LIVES: %d (must be 1-%d)", c.MaxLives, MaxLivesLimit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid SHINYPATH_LOG_LEVEL: %w", err)
	}
	if c.LogMaxSizeMB < 1 {
		return fmt.Errorf("invalid SHINYPATH_LOG_MAX_SIZE_MB: %d (must be positive)", c.LogMaxSizeMB)
	}
	if c.LogMaxBackups < 0 {
		return fmt.Errorf("invalid SHINYPATH_LOG_MAX_BACKUPS: %d (must be non-negative)", c.LogMaxBackups)
	}
	return nil
}

// DefaultLogPath resolves the log file path in priority order:
// 1. $XDG_STATE_HOME/shinypath/shinypath.log
// 2. ~/.local/state/shinypath/shinypath.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "shinypath", "shinypath.log"), nil
}
