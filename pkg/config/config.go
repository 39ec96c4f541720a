// Package config handles loading, validating, and saving decoy configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level decoy configuration loaded from config.yaml.
type Config struct {
	Enabled   bool            `yaml:"enabled"`
	Debug     bool            `yaml:"debug,omitempty"`
	Watch     WatchConfig     `yaml:"watch"`
	Decoys    DecoyConfig     `yaml:"decoys"`
	Notify    NotifyConfig    `yaml:"notify"`
	Stats     StatsConfig     `yaml:"stats"`
	Rendering RenderingConfig `yaml:"rendering"`
}

// WatchConfig controls clipboard polling.
type WatchConfig struct {
	Interval    string `yaml:"interval,omitempty"`     // Go duration; default 500ms
	DedupWindow string `yaml:"dedup_window,omitempty"` // Go duration; default 5s
	TextMode    bool   `yaml:"text_mode,omitempty"`    // rewrite URLs embedded in text, not just bare URLs
}

// DecoyConfig controls value randomization.
type DecoyConfig struct {
	AllowRepeats bool `yaml:"allow_repeats,omitempty"`
}

// NotifyConfig controls user-facing notifications.
type NotifyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Message string `yaml:"message,omitempty"`
}

// StatsConfig controls usage counters.
type StatsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// RenderingConfig controls terminal output.
type RenderingConfig struct {
	Images string `yaml:"images,omitempty"` // auto | inline | text
	Color  string `yaml:"color,omitempty"`  // auto | always | never
}

const (
	DefaultInterval    = 500 * time.Millisecond
	DefaultDedupWindow = 5 * time.Second
	DefaultMessage     = "Tracking parameters randomized!"
)

// Default returns the configuration used when no config.yaml exists.
func Default() *Config {
	return &Config{
		Enabled: true,
		Watch: WatchConfig{
			Interval:    DefaultInterval.String(),
			DedupWindow: DefaultDedupWindow.String(),
		},
		Notify:    NotifyConfig{Enabled: true, Message: DefaultMessage},
		Stats:     StatsConfig{Enabled: true},
		Rendering: RenderingConfig{Images: "auto", Color: "auto"},
	}
}

// DeepCopy returns a deep copy of the config by round-tripping through YAML.
func (c *Config) DeepCopy() *Config {
	data, err := yaml.Marshal(c)
	if err != nil {
		panic(fmt.Sprintf("config marshal during DeepCopy: %v", err))
	}
	var copy Config
	if err := yaml.Unmarshal(data, &copy); err != nil {
		panic(fmt.Sprintf("config unmarshal during DeepCopy: %v", err))
	}
	return &copy
}

// PollInterval returns the parsed watch interval, or the default when unset.
func (c *Config) PollInterval() time.Duration {
	return durationOr(c.Watch.Interval, DefaultInterval)
}

// DedupWindow returns the parsed dedup window, or the default when unset.
func (c *Config) DedupWindow() time.Duration {
	return durationOr(c.Watch.DedupWindow, DefaultDedupWindow)
}

// NotifyMessage returns the notification text, or the default when unset.
func (c *Config) NotifyMessage() string {
	if c.Notify.Message == "" {
		return DefaultMessage
	}
	return c.Notify.Message
}

func durationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

// Dir returns the path to the decoy data directory (~/.decoy/),
// creating it if it doesn't exist. Override with DECOY_DIR env var.
func Dir() (string, error) {
	dir := os.Getenv("DECOY_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("determining home directory: %w", err)
		}
		dir = filepath.Join(home, ".decoy")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating decoy directory: %w", err)
	}
	return dir, nil
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, "config.yaml")
}

// Load reads and parses config.yaml from dir. Fields missing from the file
// keep their default values.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save marshals the config to YAML and writes it to config.yaml in dir.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating decoy directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := "# decoy configuration\n# Edit this file directly or use: decoy config init --force\n\n"
	return os.WriteFile(Path(dir), []byte(header+string(data)), 0o644)
}

// Validate checks internal consistency of the config.
func Validate(cfg *Config) error {
	if err := validateDuration("watch.interval", cfg.Watch.Interval, 50*time.Millisecond); err != nil {
		return err
	}
	if err := validateDuration("watch.dedup_window", cfg.Watch.DedupWindow, 0); err != nil {
		return err
	}

	if cfg.Rendering.Images != "" {
		switch strings.ToLower(cfg.Rendering.Images) {
		case "auto", "inline", "text":
			// valid
		default:
			return fmt.Errorf("invalid rendering.images value %q", cfg.Rendering.Images)
		}
	}
	if cfg.Rendering.Color != "" {
		switch strings.ToLower(cfg.Rendering.Color) {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid rendering.color value %q", cfg.Rendering.Color)
		}
	}
	return nil
}

func validateDuration(field, value string, floor time.Duration) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if d < floor {
		return fmt.Errorf("%s %s is below the minimum of %s", field, d, floor)
	}
	return nil
}
