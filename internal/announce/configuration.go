package announce

import (
	"fmt"
	"strings"

	"github.com/temirov/colorline/internal/ui"
)

const (
	defaultColorNameConstant               = "green"
	defaultTagConstant                     = "INFO"
	colorConfigurationKeySuffixConstant    = ".color"
	tagConfigurationKeySuffixConstant      = ".tag"
	invalidConfiguredColorTemplateConstant = "invalid console color configuration: %w"
)

// CommandConfiguration captures persisted defaults for the print command.
type CommandConfiguration struct {
	Color string `mapstructure:"color"`
	Tag   string `mapstructure:"tag"`
}

// DefaultCommandConfiguration returns the built-in print defaults.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{Color: defaultColorNameConstant, Tag: defaultTagConstant}
}

// DefaultConfigurationValues exposes the print defaults keyed under the provided prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefix + colorConfigurationKeySuffixConstant: defaults.Color,
		prefix + tagConfigurationKeySuffixConstant:   defaults.Tag,
	}
}

// ResolveColor parses the configured color, falling back to the default when unset.
func (configuration CommandConfiguration) ResolveColor() (ui.Color, error) {
	if len(strings.TrimSpace(configuration.Color)) == 0 {
		return ui.ColorGreen, nil
	}
	resolvedColor, parseError := ui.ParseColor(configuration.Color)
	if parseError != nil {
		return ui.ColorGreen, fmt.Errorf(invalidConfiguredColorTemplateConstant, parseError)
	}
	return resolvedColor, nil
}

// ResolveTag returns the configured tag, falling back to the default when unset.
func (configuration CommandConfiguration) ResolveTag() string {
	trimmedTag := strings.TrimSpace(configuration.Tag)
	if len(trimmedTag) == 0 {
		return defaultTagConstant
	}
	return trimmedTag
}
