// Package config handles settings loading and validation for resswitch
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iiroan/resswitch/internal/platform"
	"github.com/iiroan/resswitch/internal/store"
)

// FileName is the settings file name inside the per-user config directory.
const FileName = "config.yaml"

// Config represents the resswitch settings file
type Config struct {
	Presets PresetsConfig `yaml:"presets"`
	Display DisplayConfig `yaml:"display"`
	UI      UIConfig      `yaml:"ui"`
}

// PresetsConfig controls where presets live and how many are collected
type PresetsConfig struct {
	Path     string `yaml:"path"`
	MinSetup int    `yaml:"min_setup"`
	MaxSetup int    `yaml:"max_setup"`
	MaxTotal int    `yaml:"max_total"` // 0 means unlimited
}

// DisplayConfig selects the display backend
type DisplayConfig struct {
	Backend string `yaml:"backend"` // auto, windows, or xrandr
	Output  string `yaml:"output"`
	Persist bool   `yaml:"persist"`
}

// UIConfig holds console presentation settings
type UIConfig struct {
	Theme   string `yaml:"theme"`
	NoColor bool   `yaml:"no_color"`
	Dense   bool   `yaml:"dense"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Presets: PresetsConfig{
			MinSetup: 2,
			MaxSetup: 5,
		},
		Display: DisplayConfig{
			Backend: "auto",
			Persist: true,
		},
		UI: UIConfig{
			Theme: "aurora",
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Presets.MinSetup < 1 {
		return fmt.Errorf("presets.min_setup must be at least 1")
	}
	if c.Presets.MaxSetup < c.Presets.MinSetup {
		return fmt.Errorf("presets.max_setup must not be below presets.min_setup")
	}
	if c.Presets.MaxTotal < 0 {
		return fmt.Errorf("presets.max_total must not be negative")
	}
	switch NormalizeName(c.Display.Backend) {
	case "", "auto", "windows", "xrandr":
	default:
		return fmt.Errorf("display.backend %q is not one of auto, windows, xrandr", c.Display.Backend)
	}
	return nil
}

// PresetsPath returns the preset file path, defaulting to the home directory.
func (c *Config) PresetsPath() (string, error) {
	if c.Presets.Path != "" {
		return expandHome(c.Presets.Path)
	}
	return platform.HomeFile(store.DefaultFileName)
}

// GetConfigPath returns the default settings file path
func GetConfigPath() (string, error) {
	return platform.ConfigFile(FileName)
}

// LoadDefault loads configuration from the default location
func LoadDefault() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// NormalizeName normalizes a backend or theme name
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return name
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
