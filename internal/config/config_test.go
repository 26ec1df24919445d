package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n got  %+v\n want %+v", cfg, Default())
	}
	if len(DefaultYAML()) == 0 {
		t.Error("embedded YAML should not be empty")
	}
}

func TestLoadCustomYAMLKeepsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "arena:\n  width: 120\nloop:\n  fps: 30\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Width != 120 || cfg.Loop.FPS != 30 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Arena.Height != Default().Arena.Height || cfg.Arena.Speed != Default().Arena.Speed {
		t.Errorf("missing keys should keep defaults, got %+v", cfg.Arena)
	}
	if cfg.Storage.DBPath != Default().Storage.DBPath {
		t.Errorf("db path = %q, expected default", cfg.Storage.DBPath)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	writeFile(t, path, `
[arena]
width = 100
height = 50
speed = 10

[server]
address = ":2424"

[logging]
level = "debug"
compress = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena != (ArenaConfig{Width: 100, Height: 50, Speed: 10}) {
		t.Errorf("arena = %+v", cfg.Arena)
	}
	if cfg.Server.Address != ":2424" || cfg.Server.IdleTimeoutMinutes != Default().Server.IdleTimeoutMinutes {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Compress {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()
	badYAML := filepath.Join(dir, "bad.yaml")
	writeFile(t, badYAML, "arena: [unterminated")
	badTOML := filepath.Join(dir, "bad.toml")
	writeFile(t, badTOML, "[arena\nwidth = ")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"invalid yaml", badYAML, "failed to parse"},
		{"invalid toml", badTOML, "failed to parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadUserConfigTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".pong", "configs", "pong.toml"), "[loop]\nfps = 24\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loop.FPS != 24 {
		t.Errorf("fps = %d, expected 24 from the user config", cfg.Loop.FPS)
	}
}

func TestLoadUserConfigPrefersYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".pong", "configs", "pong.yaml"), "loop:\n  fps: 50\n")
	writeFile(t, filepath.Join(home, ".pong", "configs", "pong.toml"), "[loop]\nfps = 24\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loop.FPS != 50 {
		t.Errorf("fps = %d, expected 50 from pong.yaml", cfg.Loop.FPS)
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	cfg := Default()
	if err := Decode([]byte("x"), Format("ini"), &cfg); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Arena.Width = 0 }, "arena.width"},
		{"negative height", func(c *Config) { c.Arena.Height = -1 }, "arena.height"},
		{"zero speed", func(c *Config) { c.Arena.Speed = 0 }, "arena.speed"},
		{"zero fps", func(c *Config) { c.Loop.FPS = 0 }, "loop.fps"},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeoutMinutes = -5 }, "idle_timeout"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) || !strings.HasPrefix(err.Error(), "config: ") {
				t.Errorf("error %q should start with config: and mention %q", err, tc.want)
			}
		})
	}
}
