package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	colorNameRedConstant                  = "red"
	colorNameGreenConstant                = "green"
	colorNameYellowConstant               = "yellow"
	colorNameBlueConstant                 = "blue"
	colorNameMagentaConstant              = "magenta"
	colorNameCyanConstant                 = "cyan"
	colorNameWhiteConstant                = "white"
	unknownColorNameConstant              = "unknown"
	escapeSequenceTemplateConstant        = "\x1b[%dm"
	unsupportedColorErrorTemplateConstant = "unsupported color: %q"
)

// Color identifies one of the fixed foreground colors supported by the console helpers.
type Color int

// Supported colors.
const (
	ColorRed Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// ResetSequence restores the default terminal rendition.
var ResetSequence = fmt.Sprintf(escapeSequenceTemplateConstant, color.Reset)

var colorAttributeMapping = map[Color]color.Attribute{
	ColorRed:     color.FgRed,
	ColorGreen:   color.FgGreen,
	ColorYellow:  color.FgYellow,
	ColorBlue:    color.FgBlue,
	ColorMagenta: color.FgMagenta,
	ColorCyan:    color.FgCyan,
	ColorWhite:   color.FgWhite,
}

var colorNameMapping = map[Color]string{
	ColorRed:     colorNameRedConstant,
	ColorGreen:   colorNameGreenConstant,
	ColorYellow:  colorNameYellowConstant,
	ColorBlue:    colorNameBlueConstant,
	ColorMagenta: colorNameMagentaConstant,
	ColorCyan:    colorNameCyanConstant,
	ColorWhite:   colorNameWhiteConstant,
}

// Colors lists every supported color in declaration order.
func Colors() []Color {
	return []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan, ColorWhite}
}

// ColorNames lists the lower-case names accepted by ParseColor in declaration order.
func ColorNames() []string {
	supportedColors := Colors()
	names := make([]string, 0, len(supportedColors))
	for _, supportedColor := range supportedColors {
		names = append(names, supportedColor.String())
	}
	return names
}

// ParseColor resolves a case-insensitive color name.
func ParseColor(name string) (Color, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))
	for candidateColor, candidateName := range colorNameMapping {
		if candidateName == normalizedName {
			return candidateColor, nil
		}
	}
	return ColorWhite, fmt.Errorf(unsupportedColorErrorTemplateConstant, name)
}

// String returns the lower-case color name.
func (value Color) String() string {
	name, known := colorNameMapping[value]
	if !known {
		return unknownColorNameConstant
	}
	return name
}

// EscapeSequence returns the ANSI SGR sequence selecting the color. Values outside the
// supported set resolve to the reset sequence.
func (value Color) EscapeSequence() string {
	return fmt.Sprintf(escapeSequenceTemplateConstant, value.attribute())
}

func (value Color) attribute() color.Attribute {
	attribute, known := colorAttributeMapping[value]
	if !known {
		return color.Reset
	}
	return attribute
}

// painter returns a fatih/color renderer that always emits escapes, regardless of whether the
// destination is a terminal.
func (value Color) painter() *color.Color {
	painter := color.New(value.attribute())
	painter.EnableColor()
	return painter
}
