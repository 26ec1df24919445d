package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  80,
			Height: 40,
			Speed:  30,
		},
		Loop: LoopConfig{
			FPS: 60,
		},
		Storage: StorageConfig{
			DBPath: "~/.pong/history.db",
		},
		Server: ServerConfig{
			Address:            ":2323",
			HostKeyPath:        ".ssh/pong_ed25519",
			IdleTimeoutMinutes: 10,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
