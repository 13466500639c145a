package cliconfig

import "os"

// Flag names shared by the command line, the config file and the environment overlay.
const (
	FlagConfig     = "config"
	FlagPlaces     = "places"
	FlagSteps      = "steps"
	FlagColor      = "color"
	FlagPivotColor = "pivot-color"
	FlagLogLevel   = "log-level"
	FlagWorkers    = "workers"
)

// ApplyEnvConfig applies configuration from environment variables (ROWREDUCER_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString(FlagPlaces, os.Getenv("ROWREDUCER_PLACES"), &cfg.Places); err != nil {
		return err
	}
	if err := s.setIntFromString(FlagWorkers, os.Getenv("ROWREDUCER_WORKERS"), &cfg.Workers); err != nil {
		return err
	}

	s.setBoolFromString(FlagSteps, os.Getenv("ROWREDUCER_STEPS"), &cfg.ShowSteps)
	s.setBoolFromString(FlagColor, os.Getenv("ROWREDUCER_COLOR"), &cfg.Color)
	s.setString(FlagPivotColor, os.Getenv("ROWREDUCER_PIVOT_COLOR"), &cfg.PivotColor)
	s.setString(FlagLogLevel, os.Getenv("ROWREDUCER_LOG_LEVEL"), &cfg.LogLevel)

	return nil
}

// Load resolves the effective configuration: defaults, then the config file
// (path, or DefaultConfigPath when empty and present), then ROWREDUCER_*
// variables, each layer skipping flags named in changed. cfg must already
// carry the flag values.
func Load(cfg *Config, path string, changed map[string]bool) error {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" || !FileExists(path) {
			path = ""
		}
	}
	if path != "" {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return err
		}
		ApplyFileConfig(cfg, fc, changed)
	}
	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}
