package rangelog

import (
	"fmt"
	"slices"
)

// Standard field keys of trace events.
const (
	FieldComponent = "component"
	FieldStage     = "stage"
	FieldSeq       = "seq"
	FieldValue     = "value"
)

// Config configures a trace stage.
type Config struct {
	// Level is the zerolog level events are emitted at.
	Level string `yaml:"level" mapstructure:"level"`
	// Component tags every event; defaults to "ranges".
	Component string `yaml:"component" mapstructure:"component"`
	// Stage names the traced point in the chain.
	Stage string `yaml:"stage" mapstructure:"stage"`
	// SampleEvery logs one event out of every N dereferences.
	SampleEvery int `yaml:"sample_every" mapstructure:"sample_every"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "debug"
	}
	if c.Component == "" {
		c.Component = "ranges"
	}
	if c.SampleEvery == 0 {
		c.SampleEvery = 1
	}
}

// Validate validates the configuration. Failures wrap [ErrInvalidConfig].
func (c *Config) Validate() error {
	validLevels := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, c.Level) {
		return fmt.Errorf("%w: rangelog.level must be one of %v (got: %s)", ErrInvalidConfig, validLevels, c.Level)
	}
	if c.SampleEvery < 1 {
		return fmt.Errorf("%w: rangelog.sample_every must be positive (got: %d)", ErrInvalidConfig, c.SampleEvery)
	}
	return nil
}
