package cliconfig

import (
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1"

	"github.com/katalvlaran/rowreducer/internal/logging"
	"github.com/katalvlaran/rowreducer/matrix"
)

// DefaultPivotColor highlights pivot cells when colour output is enabled.
const DefaultPivotColor = "#ffb000"

// NoDisplayRounding prints values exactly as stored.
const NoDisplayRounding = -1

// Config holds CLI configuration for rowreducer.
type Config struct {
	// Places rounds printed values; NoDisplayRounding prints them as stored.
	Places    int
	ShowSteps bool

	Color      bool
	PivotColor string

	LogLevel string
	Workers  int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Places:     NoDisplayRounding,
		ShowSteps:  true,
		PivotColor: DefaultPivotColor,
		LogLevel:   logging.DefaultLevel,
		Workers:    4,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Places < NoDisplayRounding || c.Places > matrix.NormalizedPlaces {
		return errors.Errorf("places must be between %d and %d, got %d",
			NoDisplayRounding, matrix.NormalizedPlaces, c.Places)
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.PivotColor == "" {
		c.PivotColor = DefaultPivotColor
	}
	if _, err := colors.Parse(c.PivotColor); err != nil {
		return errors.Wrapf(err, "pivot-color %q", c.PivotColor)
	}

	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int value from a pointer if not nil and flag not changed.
// Used where zero is meaningful.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Negative values are kept; Validate decides whether they are acceptable.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return errors.Wrapf(err, "parse %s", flag)
	}
	*dst = i

	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
