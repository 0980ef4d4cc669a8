// Package config loads shiftaudit settings from a TOML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/shiftaudit/internal/timecard"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type InputConfig struct {
	Sheet       string           `toml:"sheet"`
	TimeLayouts []string         `toml:"time_layouts"`
	Columns     timecard.Columns `toml:"columns"`
}

type OutputConfig struct {
	Format string `toml:"format"` // "text", "plain" or "json"
}

type LogConfig struct {
	UseCases bool `toml:"use_cases"`
}

const (
	FormatText  = "text"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			TimeLayouts: append([]string(nil), timecard.DefaultTimeLayouts...),
			Columns:     timecard.DefaultColumns(),
		},
		Output: OutputConfig{Format: FormatText},
	}
}

// TimecardOptions converts the input section into reader options.
func (c Config) TimecardOptions() timecard.Options {
	return timecard.Options{
		Sheet:       c.Input.Sheet,
		Columns:     c.Input.Columns,
		TimeLayouts: c.Input.TimeLayouts,
	}
}

// Validate rejects values the CLI cannot act on.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatPlain, FormatJSON:
		return nil
	default:
		return fmt.Errorf("output.format: invalid value %q (expected %q, %q or %q)", c.Output.Format, FormatText, FormatPlain, FormatJSON)
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "shiftaudit"), nil
}

// ConfigPath returns $SHIFTAUDIT_CONFIG or the default file location.
func ConfigPath() (string, error) {
	if v := os.Getenv("SHIFTAUDIT_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment overrides.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SHIFTAUDIT_SHEET"); v != "" {
		cfg.Input.Sheet = v
	}
	if v := os.Getenv("SHIFTAUDIT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("SHIFTAUDIT_LOG_USE_CASES"); v != "" {
		cfg.Log.UseCases, _ = strconv.ParseBool(v)
	}
}
