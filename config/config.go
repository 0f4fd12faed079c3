package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the conversion configuration. Sources are layered: built-in
// defaults, then the config file, then KEYMACRO_* environment variables,
// then command-line flags.
type Config struct {
	GameProfile         string  `json:"gameProfile,omitempty"`
	TempoMultiplier     float64 `json:"tempoMultiplier,omitempty"`
	MinNoteDurationSec  float64 `json:"minNoteDurationSeconds,omitempty"`
	TransposeSemitones  int     `json:"transposeSemitones,omitempty"`
	MinDelayThresholdMs int64   `json:"minDelayThresholdMs,omitempty"`
	KeyPressGapMs       int64   `json:"keyPressGapMs,omitempty"`
	PreviewPort         string  `json:"previewPort,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GameProfile:         "wwm",
		TempoMultiplier:     1.0,
		MinNoteDurationSec:  0.1,
		TransposeSemitones:  0,
		MinDelayThresholdMs: 5,
		KeyPressGapMs:       2,
	}
}

// MinNoteDurationMs returns the press-duration floor in milliseconds.
func (c *Config) MinNoteDurationMs() float64 {
	return c.MinNoteDurationSec * 1000
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-keymacro"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays KEYMACRO_* environment variables onto the config.
// Unparseable values are skipped with a warning rather than failing the
// run.
func (c *Config) ApplyEnv(log *slog.Logger) {
	if v := os.Getenv("KEYMACRO_PROFILE"); v != "" {
		c.GameProfile = v
	}
	if v := os.Getenv("KEYMACRO_PORT"); v != "" {
		c.PreviewPort = v
	}
	envFloat(log, "KEYMACRO_TEMPO", &c.TempoMultiplier)
	envFloat(log, "KEYMACRO_MIN_DURATION", &c.MinNoteDurationSec)
	envInt(log, "KEYMACRO_TRANSPOSE", &c.TransposeSemitones)
	envInt64(log, "KEYMACRO_MIN_DELAY", &c.MinDelayThresholdMs)
	envInt64(log, "KEYMACRO_KEY_GAP", &c.KeyPressGapMs)
}

func envFloat(log *slog.Logger, name string, dst *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn("ignoring unparseable environment variable", "name", name, "value", v)
		return
	}
	*dst = f
}

func envInt(log *slog.Logger, name string, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("ignoring unparseable environment variable", "name", name, "value", v)
		return
	}
	*dst = n
}

func envInt64(log *slog.Logger, name string, dst *int64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Warn("ignoring unparseable environment variable", "name", name, "value", v)
		return
	}
	*dst = n
}
