package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// FileConfig mirrors Config for TOML. Pointers distinguish "unset" from zero values.
type FileConfig struct {
	Places     *int   `toml:"places"`
	ShowSteps  *bool  `toml:"steps"`
	Color      *bool  `toml:"color"`
	PivotColor string `toml:"pivot_color"`
	LogLevel   string `toml:"log_level"`
	Workers    int    `toml:"workers"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, errors.Wrap(err, "read config")
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, errors.Wrapf(err, "parse config %s", path)
	}

	return fc, nil
}

// DefaultConfigPath returns ~/.rowreducer/config.toml, or "" when the home
// directory cannot be resolved.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".rowreducer", "config.toml")
	}

	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setIntPtr(FlagPlaces, fc.Places, &cfg.Places)
	s.setBool(FlagSteps, fc.ShowSteps, &cfg.ShowSteps)
	s.setBool(FlagColor, fc.Color, &cfg.Color)
	s.setString(FlagPivotColor, fc.PivotColor, &cfg.PivotColor)
	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
	s.setInt(FlagWorkers, fc.Workers, &cfg.Workers)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
