// Package config loads engine configuration from YAML with sane defaults.
// The feature kill-switch lives here: Config.Enabled (overridable via the
// BREAKTHROUGH_DISABLED environment variable) gates the whole
// selection/mutation subsystem.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lumenpath/breakthrough/parameter"
)

// EnvDisabled force-disables the engine regardless of file config
// Any non-empty value except "0" and "false" counts as set
const EnvDisabled = "BREAKTHROUGH_DISABLED"

// Duration wraps time.Duration so YAML can carry "300ms"/"15s" strings
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"300ms\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the root engine configuration
type Config struct {
	// Enabled gates the selection/mutation subsystem; when false, prewarm
	// short-circuits to the fallback variant
	Enabled bool `yaml:"enabled"`

	Storage  StorageConfig  `yaml:"storage"`
	Playback PlaybackConfig `yaml:"playback"`
	Safety   SafetyConfig   `yaml:"safety"`
}

// StorageConfig locates the history database
type StorageConfig struct {
	// Path of the SQLite file; empty keeps history in memory only
	Path string `yaml:"path"`
}

// PlaybackConfig tunes lifecycle timing
type PlaybackConfig struct {
	SettleDuration Duration `yaml:"settle_duration"`
	MaxDuration    Duration `yaml:"max_duration"`
}

// SafetyConfig tunes the frame-rate safety net
type SafetyConfig struct {
	FPSCheckInterval Duration `yaml:"fps_check_interval"`
	FPSThreshold     float64  `yaml:"fps_threshold"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Enabled: true,
		Playback: PlaybackConfig{
			SettleDuration: Duration(parameter.SettleDuration),
			MaxDuration:    Duration(parameter.MaxPlaybackDuration),
		},
		Safety: SafetyConfig{
			FPSCheckInterval: Duration(parameter.FPSCheckInterval),
			FPSThreshold:     parameter.FPSSafeModeThreshold,
		},
	}
}

// Load reads a YAML config file over the defaults, then applies env overrides
// A missing file is not an error: defaults plus env apply
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvDisabled); ok && v != "" && v != "0" && v != "false" {
		cfg.Enabled = false
	}
}

func (c Config) validate() error {
	if c.Playback.SettleDuration < 0 {
		return fmt.Errorf("settle_duration must be non-negative, got %v", c.Playback.SettleDuration.Std())
	}
	if c.Playback.MaxDuration <= 0 {
		return fmt.Errorf("max_duration must be positive, got %v", c.Playback.MaxDuration.Std())
	}
	if c.Safety.FPSCheckInterval <= 0 {
		return fmt.Errorf("fps_check_interval must be positive, got %v", c.Safety.FPSCheckInterval.Std())
	}
	if c.Safety.FPSThreshold <= 0 {
		return fmt.Errorf("fps_threshold must be positive, got %v", c.Safety.FPSThreshold)
	}
	return nil
}
