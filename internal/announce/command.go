package announce

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/colorline/internal/ui"
	"github.com/temirov/colorline/internal/utils/flags"
)

const (
	commandUseConstant              = "print <message> [arguments...]"
	commandShortDescriptionConstant = "Print a tagged, colorized line"
	commandLongDescriptionConstant  = "print writes \"[TAG] message\" wrapped in ANSI color escapes. With extra arguments the message is a printf-style template; without them it is printed verbatim, percent signs included. Flags must precede the message; everything after it is positional, so negative numbers pass through. Use -- before a message that itself starts with a dash."
	flagColorNameConstant           = "color"
	flagColorDescriptionConstant    = "Color of the line"
	flagTagNameConstant             = "tag"
	flagTagDescriptionConstant      = "Severity tag printed inside brackets"
	missingMessageErrorConstant     = "print requires a message"
	lineEmittedLogMessageConstant   = "line emitted"
	logFieldColorConstant           = "color"
	logFieldTagConstant             = "tag"
	logFieldArgumentCountConstant   = "argument_count"
)

var errMissingMessage = errors.New(missingMessageErrorConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted print defaults.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the print command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

type commandOptions struct {
	color ui.Color
	tag   string
}

// Build constructs the print command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	options := &commandOptions{}
	defaults := DefaultCommandConfiguration()

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, options, arguments)
		},
	}

	flags.AddColorFlag(command.Flags(), &options.color, flagColorNameConstant, ui.ColorGreen, flagColorDescriptionConstant)
	command.Flags().StringVar(&options.tag, flagTagNameConstant, defaults.Tag, flagTagDescriptionConstant)
	command.Flags().SetInterspersed(false)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, options *commandOptions, arguments []string) error {
	if len(arguments) == 0 {
		return errMissingMessage
	}

	resolvedOptions, resolveError := builder.resolveOptions(command, *options)
	if resolveError != nil {
		return resolveError
	}

	formatArguments := CoerceArguments(arguments[1:])
	ui.NewLineEmitter(command.OutOrStdout()).Emit(resolvedOptions.color, resolvedOptions.tag, arguments[0], formatArguments...)

	builder.resolveLogger().Debug(
		lineEmittedLogMessageConstant,
		zap.String(logFieldColorConstant, resolvedOptions.color.String()),
		zap.String(logFieldTagConstant, resolvedOptions.tag),
		zap.Int(logFieldArgumentCountConstant, len(formatArguments)),
	)

	return nil
}

func (builder *CommandBuilder) resolveOptions(command *cobra.Command, options commandOptions) (commandOptions, error) {
	configuration := builder.resolveConfiguration()

	if !command.Flags().Changed(flagColorNameConstant) {
		configuredColor, colorError := configuration.ResolveColor()
		if colorError != nil {
			return commandOptions{}, colorError
		}
		options.color = configuredColor
	}

	if !command.Flags().Changed(flagTagNameConstant) {
		options.tag = configuration.ResolveTag()
	}

	return options, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
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
