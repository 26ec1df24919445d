// Package config provides YAML and TOML configuration loading for pong.
package config

import (
	"errors"
	"fmt"
)

// Config contains everything the pong binaries read at startup.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena" toml:"arena"`
	Loop    LoopConfig    `yaml:"loop" toml:"loop"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ArenaConfig defines the match geometry in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"` // Units per second for ball and paddles
}

// LoopConfig defines the frame loop.
type LoopConfig struct {
	FPS int `yaml:"fps" toml:"fps"`
}

// StorageConfig defines where match history is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path" toml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address" toml:"address"`
	HostKeyPath        string `yaml:"host_key_path" toml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes" toml:"idle_timeout_minutes"`
}

// LoggingConfig defines log level and the optional rotating log file.
type LoggingConfig struct {
	Level      string `yaml:"level" toml:"level"`
	File       string `yaml:"file" toml:"file"` // Empty logs to stderr
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// Validate checks the values the engine and loop rely on.
func (c Config) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 {
		errs = append(errs, fmt.Errorf("arena.width must be positive, got %v", c.Arena.Width))
	}
	if c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena.height must be positive, got %v", c.Arena.Height))
	}
	if c.Arena.Speed <= 0 {
		errs = append(errs, fmt.Errorf("arena.speed must be positive, got %v", c.Arena.Speed))
	}
	if c.Loop.FPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.fps must be positive, got %d", c.Loop.FPS))
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
