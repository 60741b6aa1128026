// Package config provides YAML-based configuration loading for the flow
// puzzle: level sources, progress storage, logging, theme and SSH serving.
package config

import (
	"fmt"
	"time"
)

// FlowConfig contains all configuration of the application.
type FlowConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Theme   string        `yaml:"theme"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// LevelsConfig defines where extra level files are read from.
// Builtin levels are always available.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig defines the progress database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	Player string `yaml:"player"` // progress owner for local play
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // log file used while the TUI owns the terminal
}

// SSHConfig defines the SSH server for remote play.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Validate checks values the loader cannot repair.
func (c FlowConfig) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path must not be empty")
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative")
	}
	return nil
}
