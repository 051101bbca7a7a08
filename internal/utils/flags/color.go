package flags

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/temirov/colorline/internal/ui"
)

const colorFlagTypeConstant = "color"

type colorFlagValue struct {
	target *ui.Color
}

// AddColorFlag registers a flag accepting one of the supported color names.
func AddColorFlag(flagSet *pflag.FlagSet, target *ui.Color, name string, defaultValue ui.Color, description string) {
	if flagSet == nil || target == nil || len(strings.TrimSpace(name)) == 0 {
		return
	}
	*target = defaultValue
	flagSet.Var(&colorFlagValue{target: target}, name, FormatChoiceUsage(defaultValue.String(), ui.ColorNames(), description))
}

func (value *colorFlagValue) Set(rawValue string) error {
	parsedColor, parseError := ui.ParseColor(rawValue)
	if parseError != nil {
		return parseError
	}
	*value.target = parsedColor
	return nil
}

func (value *colorFlagValue) String() string {
	if value == nil || value.target == nil {
		return ""
	}
	return value.target.String()
}

func (value *colorFlagValue) Type() string {
	return colorFlagTypeConstant
}
