package announce

import (
	"strconv"
	"strings"
)

const (
	decimalDigitsConstant = "0123456789"
	trueLiteralConstant   = "true"
	falseLiteralConstant  = "false"
)

// CoerceArguments converts textual command-line arguments into typed values so that numeric
// verbs such as %d and %.2f receive numbers: integers become int64, other numbers float64,
// true/false become bool, and everything else stays a string.
func CoerceArguments(rawArguments []string) []any {
	if len(rawArguments) == 0 {
		return nil
	}

	coercedArguments := make([]any, 0, len(rawArguments))
	for _, rawArgument := range rawArguments {
		coercedArguments = append(coercedArguments, coerceArgument(rawArgument))
	}
	return coercedArguments
}

func coerceArgument(rawArgument string) any {
	trimmedArgument := strings.TrimSpace(rawArgument)
	if integerValue, integerError := strconv.ParseInt(trimmedArgument, 10, 64); integerError == nil {
		return integerValue
	}
	if strings.ContainsAny(trimmedArgument, decimalDigitsConstant) {
		if floatValue, floatError := strconv.ParseFloat(trimmedArgument, 64); floatError == nil {
			return floatValue
		}
	}
	switch trimmedArgument {
	case trueLiteralConstant:
		return true
	case falseLiteralConstant:
		return false
	}
	return rawArgument
}
