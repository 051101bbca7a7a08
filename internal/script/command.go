package script

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/colorline/internal/ui"
)

const (
	commandUseConstant                    = "script <path>"
	commandShortDescriptionConstant       = "Replay a YAML script of lines and dot ticks"
	commandLongDescriptionConstant        = "script reads a YAML file of emit, tick, and finish steps and replays them in order. Named counters keep independent dot runs; runs still open at the end are finished."
	commandArgumentsMessageConstant       = "script requires exactly one script path"
	commandExecutionErrorTemplateConstant = "script failed: %w"
	defaultStepTagConstant                = "INFO"
)

var errScriptPathArgument = errors.New(commandArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// DefaultsProvider supplies the color and tag used by steps that omit them.
type DefaultsProvider func() (Defaults, error)

// CommandBuilder assembles the script command.
type CommandBuilder struct {
	LoggerProvider   LoggerProvider
	DefaultsProvider DefaultsProvider
}

// Build constructs the script command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args: func(command *cobra.Command, arguments []string) error {
			if len(arguments) != 1 {
				return errScriptPathArgument
			}
			return nil
		},
		RunE: builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration, loadError := LoadConfiguration(arguments[0])
	if loadError != nil {
		return loadError
	}

	defaults, defaultsError := builder.resolveDefaults()
	if defaultsError != nil {
		return defaultsError
	}

	operations, buildError := BuildOperations(configuration, defaults)
	if buildError != nil {
		return buildError
	}

	executor := NewExecutor(builder.resolveLogger(), NewEnvironment(command.OutOrStdout()))
	if executeError := executor.Execute(command.Context(), operations); executeError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, executeError)
	}

	return nil
}

func (builder *CommandBuilder) resolveDefaults() (Defaults, error) {
	if builder.DefaultsProvider == nil {
		return Defaults{Color: ui.ColorGreen, Tag: defaultStepTagConstant}, nil
	}
	return builder.DefaultsProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
