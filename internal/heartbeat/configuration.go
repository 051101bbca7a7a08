package heartbeat

import (
	"time"
)

const (
	defaultColorNameConstant               = "cyan"
	defaultTickCountConstant               = 100
	defaultTickIntervalConstant            = 50 * time.Millisecond
	colorConfigurationKeySuffixConstant    = ".color"
	countConfigurationKeySuffixConstant    = ".count"
	intervalConfigurationKeySuffixConstant = ".interval"
)

// CommandConfiguration captures persisted defaults for the dots command.
type CommandConfiguration struct {
	Color    string        `mapstructure:"color"`
	Count    int           `mapstructure:"count"`
	Interval time.Duration `mapstructure:"interval"`
}

// DefaultCommandConfiguration returns the built-in dots defaults.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Color:    defaultColorNameConstant,
		Count:    defaultTickCountConstant,
		Interval: defaultTickIntervalConstant,
	}
}

// DefaultConfigurationValues exposes the dots defaults keyed under the provided prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefix + colorConfigurationKeySuffixConstant:    defaults.Color,
		prefix + countConfigurationKeySuffixConstant:    defaults.Count,
		prefix + intervalConfigurationKeySuffixConstant: defaults.Interval.String(),
	}
}
