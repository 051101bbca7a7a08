package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue         = "true"
	toggleFalseCanonicalValue        = "false"
	toggleFlagTypeConstant           = "bool"
	toggleParseErrorTemplateConstant = "invalid toggle value %q"
	toggleChoiceYesConstant          = "yes"
	toggleChoiceNoConstant           = "no"
)

var toggleLiteralMapping = map[string]bool{
	"yes": true,
	"y":   true,
	"on":  true,
	"no":  false,
	"n":   false,
	"off": false,
}

type toggleFlagValue struct {
	target *bool
}

// AddToggleFlag registers a boolean flag that also accepts yes/no and on/off literals. The bare
// flag means true; other values must be attached with "=" as in --active=no.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, description string) {
	if flagSet == nil || target == nil || len(strings.TrimSpace(name)) == 0 {
		return
	}
	*target = defaultValue

	defaultChoice := toggleChoiceNoConstant
	if defaultValue {
		defaultChoice = toggleChoiceYesConstant
	}
	flagSet.Var(&toggleFlagValue{target: target}, name, FormatChoiceUsage(defaultChoice, []string{toggleChoiceYesConstant, toggleChoiceNoConstant}, description))
	flagSet.Lookup(name).NoOptDefVal = toggleTrueCanonicalValue
}

// ParseToggle interprets yes/no, on/off and strconv boolean literals case-insensitively. An
// empty value means true.
func ParseToggle(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		return true, nil
	}
	if literalValue, known := toggleLiteralMapping[normalizedValue]; known {
		return literalValue, nil
	}
	parsedValue, parseError := strconv.ParseBool(normalizedValue)
	if parseError != nil {
		return false, fmt.Errorf(toggleParseErrorTemplateConstant, rawValue)
	}
	return parsedValue, nil
}

func (value *toggleFlagValue) Set(rawValue string) error {
	parsedValue, parseError := ParseToggle(rawValue)
	if parseError != nil {
		return parseError
	}
	*value.target = parsedValue
	return nil
}

func (value *toggleFlagValue) String() string {
	if value == nil || value.target == nil || !*value.target {
		return toggleFalseCanonicalValue
	}
	return toggleTrueCanonicalValue
}

func (value *toggleFlagValue) Type() string {
	return toggleFlagTypeConstant
}
