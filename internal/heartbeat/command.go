package heartbeat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/colorline/internal/ui"
	"github.com/temirov/colorline/internal/utils/flags"
)

const (
	commandUseConstant                    = "dots"
	commandShortDescriptionConstant       = "Draw an in-place run of dots to show liveness"
	commandLongDescriptionConstant        = "dots redraws a single \"[INFO] ....\" line, adding one dot per tick and starting over after 100 dots. The line is finished with a newline when the run ends."
	commandExecutionErrorTemplateConstant = "dot indicator failed: %w"
	invalidColorErrorTemplateConstant     = "invalid heartbeat color configuration: %w"
	unexpectedArgumentsMessageConstant    = "dots does not accept positional arguments"
	flagColorNameConstant                 = "color"
	flagColorDescriptionConstant          = "Color of the dots"
	flagCountNameConstant                 = "count"
	flagCountDescriptionConstant          = "Number of ticks to draw"
	flagIntervalNameConstant              = "interval"
	flagIntervalDescriptionConstant       = "Delay between ticks"
	flagActiveNameConstant                = "active"
	flagActiveDescriptionConstant         = "Draw dots; no leaves the line untouched"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted dots defaults.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the dots command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the dots command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	options := &RunOptions{}
	defaults := DefaultCommandConfiguration()

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, *options, arguments)
		},
	}

	flags.AddColorFlag(command.Flags(), &options.Color, flagColorNameConstant, ui.ColorCyan, flagColorDescriptionConstant)
	command.Flags().IntVar(&options.Count, flagCountNameConstant, defaults.Count, flagCountDescriptionConstant)
	command.Flags().DurationVar(&options.Interval, flagIntervalNameConstant, defaults.Interval, flagIntervalDescriptionConstant)
	flags.AddToggleFlag(command.Flags(), &options.Active, flagActiveNameConstant, true, flagActiveDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, options RunOptions, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	resolvedOptions, resolveError := builder.resolveOptions(command, options)
	if resolveError != nil {
		return resolveError
	}

	service := NewService(builder.resolveLogger(), command.OutOrStdout())
	if runError := service.Run(command.Context(), resolvedOptions); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) resolveOptions(command *cobra.Command, options RunOptions) (RunOptions, error) {
	configuration := builder.resolveConfiguration()

	if !command.Flags().Changed(flagColorNameConstant) && len(strings.TrimSpace(configuration.Color)) > 0 {
		configuredColor, colorError := ui.ParseColor(configuration.Color)
		if colorError != nil {
			return RunOptions{}, fmt.Errorf(invalidColorErrorTemplateConstant, colorError)
		}
		options.Color = configuredColor
	}
	if !command.Flags().Changed(flagCountNameConstant) && configuration.Count != 0 {
		options.Count = configuration.Count
	}
	if !command.Flags().Changed(flagIntervalNameConstant) && configuration.Interval != 0 {
		options.Interval = configuration.Interval
	}

	return options, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{}
	}
	return builder.ConfigurationProvider()
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
