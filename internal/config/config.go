package config

// Configuration loading and validation for pulsepad

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/pulsepad/pulsepad/internal/anim"
	"github.com/pulsepad/pulsepad/internal/errors"
)

// DefaultPath is where Load looks when the user gives no --config flag.
const DefaultPath = "pulsepad.yaml"

// envPrefix namespaces environment overrides: PULSEPAD_THEME, PULSEPAD_MULTIPLIER, ...
const envPrefix = "PULSEPAD_"

// SessionConfig controls run artifact recording.
type SessionConfig struct {
	Dir      string `yaml:"dir" koanf:"dir"`
	Save     bool   `yaml:"save" koanf:"save"`
	KeepRuns int    `yaml:"keep_runs" koanf:"keep_runs"` // 0 keeps everything
}

// LoggingConfig controls event log verbosity and destination.
type LoggingConfig struct {
	Level string `yaml:"level" koanf:"level"` // "silent","error","info","verbose","debug"
	File  string `yaml:"file" koanf:"file"`
}

// Config is the top-level pulsepad configuration, corresponding to
// pulsepad.yaml.
type Config struct {
	Theme       string        `yaml:"theme" koanf:"theme"`
	Multiplier  float64       `yaml:"multiplier" koanf:"multiplier"`
	BaseMs      int           `yaml:"base_ms" koanf:"base_ms"`
	CounterSeed int           `yaml:"counter_seed" koanf:"counter_seed"`
	Session     SessionConfig `yaml:"session" koanf:"session"`
	Logging     LoggingConfig `yaml:"logging" koanf:"logging"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		Theme:       "tokyo-night",
		Multiplier:  anim.DefaultMultiplier,
		BaseMs:      int(anim.BaseDuration.Milliseconds()),
		CounterSeed: 0,
		Session: SessionConfig{
			Dir:      "runs",
			Save:     true,
			KeepRuns: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PULSEPAD_*). A missing file is not an
// error unless autoCreate is false and the path was explicitly required;
// when autoCreate is true a default config file is written first.
func Load(path string, autoCreate bool) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.WrapConfigError(fmt.Errorf("accessing config: %w", err), path)
		}
		if autoCreate {
			if err := Default().Save(path); err != nil {
				return nil, errors.WrapConfigError(fmt.Errorf("create default config: %w", err), path)
			}
		}
	}

	k := koanf.New(".")
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.WrapConfigError(fmt.Errorf("reading config: %w", err), path)
		}
	}

	// PULSEPAD_THEME -> theme, PULSEPAD_BASE_MS -> base_ms, etc. Only the
	// top-level scalar keys are addressable this way.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("loading env overrides: %w", err), path)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("unmarshalling config: %w", err), path)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapConfigError(err, path)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Theme == "" {
		cfg.Theme = "tokyo-night"
	}
	if cfg.Multiplier == 0 {
		cfg.Multiplier = anim.DefaultMultiplier
	}
	if cfg.BaseMs == 0 {
		cfg.BaseMs = int(anim.BaseDuration.Milliseconds())
	}
	if cfg.Session.Dir == "" {
		cfg.Session.Dir = "runs"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// validThemes is the set of recognized theme names.
var validThemes = map[string]bool{
	"tokyo-night": true,
	"mono":        true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validThemes[c.Theme] {
		return fmt.Errorf("theme must be 'tokyo-night' or 'mono', got '%s'", c.Theme)
	}

	if math.IsNaN(c.Multiplier) || math.IsInf(c.Multiplier, 0) {
		return fmt.Errorf("multiplier must be a finite number")
	}
	if c.Multiplier < 0 {
		return fmt.Errorf("multiplier must be >= 0")
	}

	if c.BaseMs <= 0 {
		return fmt.Errorf("base_ms must be > 0")
	}

	if c.Session.KeepRuns < 0 {
		return fmt.Errorf("session.keep_runs must be >= 0")
	}

	if c.Logging.Level != "" {
		switch strings.ToLower(c.Logging.Level) {
		case "silent", "error", "info", "verbose", "debug":
		default:
			return fmt.Errorf("logging.level must be silent, error, info, verbose, or debug")
		}
	}

	return nil
}

// Base returns the configured base animation duration.
func (c *Config) Base() time.Duration {
	return time.Duration(c.BaseMs) * time.Millisecond
}

// Duration computes the effective pulse duration for the configured
// multiplier, clamped and rounded the same way user input is.
func (c *Config) Duration() time.Duration {
	return anim.DurationFrom(c.Base(), c.Multiplier)
}
