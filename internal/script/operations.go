package script

import (
	"context"
	"fmt"
	"strings"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"

	"github.com/temirov/colorline/internal/ui"
	"github.com/temirov/colorline/internal/utils"
)

const (
	defaultCounterNameConstant             = "default"
	defaultTickRepeatConstant              = 1
	mapstructureTagNameConstant            = "mapstructure"
	unsupportedOperationTemplateConstant   = "unsupported script operation: %s"
	stepOptionsDecodeErrorTemplateConstant = "script step %d (%s) has invalid options: %w"
	stepColorErrorTemplateConstant         = "script step %d (%s) has invalid color: %w"
	stepNonPositiveRepeatTemplateConstant  = "script step %d (%s) requires a positive repeat"
	stepNegativeIntervalTemplateConstant   = "script step %d (%s) requires a non-negative interval"
	stepMissingMessageTemplateConstant     = "script step %d (%s) requires a message"
)

// Operation is a single executable script step.
type Operation interface {
	Name() OperationType
	Execute(executionContext context.Context, environment *Environment) error
}

// Defaults supplies the color and tag used when a step omits them.
type Defaults struct {
	Color ui.Color
	Tag   string
}

type emitOptions struct {
	Color     string `mapstructure:"color"`
	Tag       string `mapstructure:"tag"`
	Message   any    `mapstructure:"message"`
	Arguments []any  `mapstructure:"arguments"`
}

type tickOptions struct {
	Color    string        `mapstructure:"color"`
	Counter  string        `mapstructure:"counter"`
	Active   *bool         `mapstructure:"active"`
	Repeat   int           `mapstructure:"repeat"`
	Interval time.Duration `mapstructure:"interval"`
}

type finishOptions struct {
	Counter string `mapstructure:"counter"`
}

// EmitOperation writes one tagged line.
type EmitOperation struct {
	Color     ui.Color
	Tag       string
	Message   any
	Arguments []any
}

// TickOperation advances a named counter Repeat times, Interval apart.
type TickOperation struct {
	Color    ui.Color
	Counter  string
	Active   bool
	Repeat   int
	Interval time.Duration
}

// FinishOperation ends the indicator run of a named counter.
type FinishOperation struct {
	Counter string
}

// BuildOperations converts the declarative configuration into executable operations. Every step
// is validated before any operation is returned.
func BuildOperations(configuration Configuration, defaults Defaults) ([]Operation, error) {
	operations := make([]Operation, 0, len(configuration.Steps))
	for stepIndex, step := range configuration.Steps {
		operation, buildError := buildOperationFromStep(stepIndex+1, step, defaults)
		if buildError != nil {
			return nil, buildError
		}
		operations = append(operations, operation)
	}
	return operations, nil
}

func buildOperationFromStep(stepNumber int, step StepConfiguration, defaults Defaults) (Operation, error) {
	switch step.Operation {
	case OperationTypeEmit:
		return buildEmitOperation(stepNumber, step, defaults)
	case OperationTypeTick:
		return buildTickOperation(stepNumber, step, defaults)
	case OperationTypeFinish:
		return buildFinishOperation(stepNumber, step)
	default:
		return nil, fmt.Errorf(unsupportedOperationTemplateConstant, step.Operation)
	}
}

func buildEmitOperation(stepNumber int, step StepConfiguration, defaults Defaults) (Operation, error) {
	options := emitOptions{}
	if decodeError := decodeStepOptions(step.Options, &options); decodeError != nil {
		return nil, fmt.Errorf(stepOptionsDecodeErrorTemplateConstant, stepNumber, step.Operation, decodeError)
	}
	if options.Message == nil {
		return nil, fmt.Errorf(stepMissingMessageTemplateConstant, stepNumber, step.Operation)
	}

	resolvedColor, colorError := resolveColor(options.Color, defaults.Color)
	if colorError != nil {
		return nil, fmt.Errorf(stepColorErrorTemplateConstant, stepNumber, step.Operation, colorError)
	}

	resolvedTag := defaults.Tag
	if len(strings.TrimSpace(options.Tag)) > 0 {
		resolvedTag = options.Tag
	}

	return &EmitOperation{Color: resolvedColor, Tag: resolvedTag, Message: options.Message, Arguments: options.Arguments}, nil
}

func buildTickOperation(stepNumber int, step StepConfiguration, defaults Defaults) (Operation, error) {
	options := tickOptions{Repeat: defaultTickRepeatConstant}
	if decodeError := decodeStepOptions(step.Options, &options); decodeError != nil {
		return nil, fmt.Errorf(stepOptionsDecodeErrorTemplateConstant, stepNumber, step.Operation, decodeError)
	}
	if options.Repeat <= 0 {
		return nil, fmt.Errorf(stepNonPositiveRepeatTemplateConstant, stepNumber, step.Operation)
	}
	if options.Interval < 0 {
		return nil, fmt.Errorf(stepNegativeIntervalTemplateConstant, stepNumber, step.Operation)
	}

	resolvedColor, colorError := resolveColor(options.Color, defaults.Color)
	if colorError != nil {
		return nil, fmt.Errorf(stepColorErrorTemplateConstant, stepNumber, step.Operation, colorError)
	}

	active := true
	if options.Active != nil {
		active = *options.Active
	}

	return &TickOperation{
		Color:    resolvedColor,
		Counter:  resolveCounterName(options.Counter),
		Active:   active,
		Repeat:   options.Repeat,
		Interval: options.Interval,
	}, nil
}

func buildFinishOperation(stepNumber int, step StepConfiguration) (Operation, error) {
	options := finishOptions{}
	if decodeError := decodeStepOptions(step.Options, &options); decodeError != nil {
		return nil, fmt.Errorf(stepOptionsDecodeErrorTemplateConstant, stepNumber, step.Operation, decodeError)
	}
	return &FinishOperation{Counter: resolveCounterName(options.Counter)}, nil
}

func decodeStepOptions(options map[string]any, target any) error {
	if len(options) == 0 {
		return nil
	}

	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          mapstructureTagNameConstant,
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if decoderError != nil {
		return decoderError
	}

	return decoder.Decode(options)
}

func resolveColor(name string, fallback ui.Color) (ui.Color, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return fallback, nil
	}
	return ui.ParseColor(name)
}

func resolveCounterName(name string) string {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return defaultCounterNameConstant
	}
	return trimmedName
}

// Name identifies the operation.
func (operation *EmitOperation) Name() OperationType {
	return OperationTypeEmit
}

// Execute writes the line.
func (operation *EmitOperation) Execute(executionContext context.Context, environment *Environment) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}
	environment.emitter.Emit(operation.Color, operation.Tag, operation.Message, operation.Arguments...)
	return nil
}

// Name identifies the operation.
func (operation *TickOperation) Name() OperationType {
	return OperationTypeTick
}

// Execute advances the named counter.
func (operation *TickOperation) Execute(executionContext context.Context, environment *Environment) error {
	counter := environment.counter(operation.Counter)
	for repeatIndex := 0; repeatIndex < operation.Repeat; repeatIndex++ {
		if repeatIndex > 0 {
			if waitError := utils.WaitInterval(executionContext, operation.Interval); waitError != nil {
				return waitError
			}
		} else if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
		environment.indicator.Tick(operation.Color, operation.Active, counter)
	}
	return nil
}

// Name identifies the operation.
func (operation *FinishOperation) Name() OperationType {
	return OperationTypeFinish
}

// Execute finishes the named counter's run.
func (operation *FinishOperation) Execute(executionContext context.Context, environment *Environment) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}
	environment.indicator.Finish(environment.counter(operation.Counter))
	return nil
}
