package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/colorline/internal/announce"
	"github.com/temirov/colorline/internal/heartbeat"
	"github.com/temirov/colorline/internal/script"
	"github.com/temirov/colorline/internal/utils"
	"github.com/temirov/colorline/internal/utils/flags"
)

const (
	applicationNameConstant                    = "colorline"
	applicationShortDescriptionConstant        = "Tagged, colorized console lines and dot progress indicators"
	applicationLongDescriptionConstant         = "colorline prints \"[TAG] message\" lines wrapped in ANSI color escapes and redraws in-place dot indicators for long-running work."
	configFileFlagNameConstant                 = "config"
	configFileFlagUsageConstant                = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                   = "log-level"
	logLevelFlagUsageConstant                  = "Override the configured log level."
	logFormatFlagNameConstant                  = "log-format"
	logFormatFlagUsageConstant                 = "Override the configured log format (structured or console)."
	initFlagNameConstant                       = "init"
	initFlagUsageConstant                      = "Write the default configuration and exit."
	forceFlagNameConstant                      = "force"
	forceFlagUsageConstant                     = "Overwrite an existing configuration file when used with --init."
	initializationScopeLocalConstant           = "local"
	initializationScopeUserConstant            = "user"
	commonConfigurationKeyConstant             = "common"
	commonLogLevelConfigKeyConstant            = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant           = commonConfigurationKeyConstant + ".log_format"
	consoleConfigurationKeyConstant            = "console"
	heartbeatConfigurationKeyConstant          = "heartbeat"
	environmentPrefixConstant                  = "COLORLINE"
	configurationNameConstant                  = "config"
	configurationTypeConstant                  = "yaml"
	configurationFileNameConstant              = configurationNameConstant + "." + configurationTypeConstant
	defaultConfigurationSearchPathConstant     = "."
	userConfigurationDirectoryNameConstant     = ".colorline"
	configurationDirectoryPermissionsConstant  = 0o755
	configurationFilePermissionsConstant       = 0o644
	configurationInitializedMessageConstant    = "configuration initialized"
	configurationWrittenLogMessageConstant     = "default configuration written"
	configurationWrittenOutputTemplateConstant = "configuration written to %s\n"
	configurationLogLevelFieldConstant         = "log_level"
	configurationLogFormatFieldConstant        = "log_format"
	configurationFileFieldConstant             = "config_file"
	configurationPathFieldConstant             = "path"
	configurationLoadErrorTemplateConstant     = "unable to load configuration: %w"
	configurationExistsErrorTemplateConstant   = "configuration file %s already exists; rerun with --force to overwrite"
	configurationScopeErrorTemplateConstant    = "unsupported --init scope %q (expected local or user)"
	configurationWriteErrorTemplateConstant    = "unable to write configuration: %w"
	configurationHomeErrorTemplateConstant     = "unable to resolve home directory: %w"
	loggerCreationErrorTemplateConstant        = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant            = "unable to flush logger: %w"
	rootCommandDebugMessageConstant            = "colorline CLI diagnostics"
	logFieldCommandNameConstant                = "command_name"
	logFieldArgumentsConstant                  = "arguments"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common    ApplicationCommonConfiguration `mapstructure:"common"`
	Console   announce.CommandConfiguration  `mapstructure:"console"`
	Heartbeat heartbeat.CommandConfiguration `mapstructure:"heartbeat"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	initializationScope    string
	forceInitialization    bool
	workingDirectoryLookup func() (string, error)
	homeDirectoryLookup    func() (string, error)
}

type commandBuilder interface {
	Build() (*cobra.Command, error)
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	embeddedConfiguration, embeddedConfigurationType := EmbeddedDefaultConfiguration()

	searchPaths := []string{defaultConfigurationSearchPathConstant}
	if homeDirectory, homeDirectoryError := os.UserHomeDir(); homeDirectoryError == nil {
		searchPaths = append(searchPaths, filepath.Join(homeDirectory, userConfigurationDirectoryNameConstant))
	}

	application := &Application{
		configurationLoader: utils.NewConfigurationLoader(utils.ConfigurationSources{
			Name:              configurationNameConstant,
			Type:              embeddedConfigurationType,
			EnvironmentPrefix: environmentPrefixConstant,
			SearchPaths:       searchPaths,
			Embedded:          embeddedConfiguration,
		}),
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		workingDirectoryLookup: os.Getwd,
		homeDirectoryLookup:    os.UserHomeDir,
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	cobraCommand.Flags().StringVar(
		&application.initializationScope,
		initFlagNameConstant,
		"",
		flags.FormatChoiceUsage(initializationScopeLocalConstant, []string{initializationScopeLocalConstant, initializationScopeUserConstant}, initFlagUsageConstant),
	)
	cobraCommand.Flags().Lookup(initFlagNameConstant).NoOptDefVal = initializationScopeLocalConstant
	cobraCommand.Flags().BoolVar(&application.forceInitialization, forceFlagNameConstant, false, forceFlagUsageConstant)

	loggerProvider := func() *zap.Logger {
		return application.logger
	}

	builders := map[string]commandBuilder{
		"print": &announce.CommandBuilder{
			LoggerProvider: loggerProvider,
			ConfigurationProvider: func() announce.CommandConfiguration {
				return application.configuration.Console
			},
		},
		"dots": &heartbeat.CommandBuilder{
			LoggerProvider: loggerProvider,
			ConfigurationProvider: func() heartbeat.CommandConfiguration {
				return application.configuration.Heartbeat
			},
		},
		"script": &script.CommandBuilder{
			LoggerProvider:   loggerProvider,
			DefaultsProvider: application.scriptDefaults,
		},
	}

	for _, commandName := range []string{"print", "dots", "script"} {
		subcommand, buildError := builders[commandName].Build()
		if buildError == nil {
			cobraCommand.AddCommand(subcommand)
		}
	}

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelError),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
	}
	for configurationKey, configurationValue := range announce.DefaultConfigurationValues(consoleConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range heartbeat.DefaultConfigurationValues(heartbeatConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	application.logger.Debug(
		rootCommandDebugMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Strings(logFieldArgumentsConstant, arguments),
	)

	if command.Flags().Changed(initFlagNameConstant) {
		return application.writeDefaultConfiguration(command)
	}

	return command.Help()
}

func (application *Application) writeDefaultConfiguration(command *cobra.Command) error {
	configurationDirectory, directoryError := application.initializationDirectory()
	if directoryError != nil {
		return directoryError
	}

	configurationPath := filepath.Join(configurationDirectory, configurationFileNameConstant)
	if !application.forceInitialization {
		_, statError := os.Stat(configurationPath)
		switch {
		case statError == nil:
			return fmt.Errorf(configurationExistsErrorTemplateConstant, configurationPath)
		case !errors.Is(statError, fs.ErrNotExist):
			return fmt.Errorf(configurationWriteErrorTemplateConstant, statError)
		}
	}

	if mkdirError := os.MkdirAll(configurationDirectory, configurationDirectoryPermissionsConstant); mkdirError != nil {
		return fmt.Errorf(configurationWriteErrorTemplateConstant, mkdirError)
	}

	configurationContent, _ := EmbeddedDefaultConfiguration()
	if writeError := os.WriteFile(configurationPath, configurationContent, configurationFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(configurationWriteErrorTemplateConstant, writeError)
	}

	application.logger.Info(configurationWrittenLogMessageConstant, zap.String(configurationPathFieldConstant, configurationPath))
	fmt.Fprintf(command.OutOrStdout(), configurationWrittenOutputTemplateConstant, configurationPath)

	return nil
}

func (application *Application) initializationDirectory() (string, error) {
	switch strings.ToLower(strings.TrimSpace(application.initializationScope)) {
	case initializationScopeLocalConstant:
		workingDirectory, workingDirectoryError := application.workingDirectoryLookup()
		if workingDirectoryError != nil {
			return "", fmt.Errorf(configurationWriteErrorTemplateConstant, workingDirectoryError)
		}
		return workingDirectory, nil
	case initializationScopeUserConstant:
		homeDirectory, homeDirectoryError := application.homeDirectoryLookup()
		if homeDirectoryError != nil {
			return "", fmt.Errorf(configurationHomeErrorTemplateConstant, homeDirectoryError)
		}
		return filepath.Join(homeDirectory, userConfigurationDirectoryNameConstant), nil
	default:
		return "", fmt.Errorf(configurationScopeErrorTemplateConstant, application.initializationScope)
	}
}

func (application *Application) scriptDefaults() (script.Defaults, error) {
	consoleColor, colorError := application.configuration.Console.ResolveColor()
	if colorError != nil {
		return script.Defaults{}, colorError
	}
	return script.Defaults{Color: consoleColor, Tag: application.configuration.Console.ResolveTag()}, nil
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
