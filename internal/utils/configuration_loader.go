package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configurationKeySeparatorConstant               = "."
	environmentKeySeparatorConstant                 = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
)

// ConfigurationSources describes where a ConfigurationLoader looks for settings. Sources are
// applied in increasing precedence: defaults, embedded content, the first configuration file
// found, then environment variables.
type ConfigurationSources struct {
	Name              string
	Type              string
	EnvironmentPrefix string
	SearchPaths       []string
	Embedded          []byte
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// ConfigurationLoader resolves layered configuration through Viper.
type ConfigurationLoader struct {
	sources ConfigurationSources
}

// NewConfigurationLoader creates a loader for the provided sources.
func NewConfigurationLoader(sources ConfigurationSources) *ConfigurationLoader {
	sources.SearchPaths = append([]string{}, sources.SearchPaths...)
	sources.Embedded = append([]byte(nil), sources.Embedded...)
	return &ConfigurationLoader{sources: sources}
}

// LoadConfiguration populates target. An explicit configurationFilePath replaces the search
// paths and must exist; a missing file in the search paths is not an error.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, target any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.sources.Name)
	viperInstance.SetConfigType(loader.sources.Type)

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	if len(loader.sources.Embedded) > 0 {
		if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.sources.Embedded)); mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
		}
	}

	trimmedPath := strings.TrimSpace(configurationFilePath)
	explicitFile := len(trimmedPath) > 0
	if explicitFile {
		viperInstance.SetConfigFile(trimmedPath)
	} else {
		for _, searchPath := range loader.sources.SearchPaths {
			viperInstance.AddConfigPath(searchPath)
		}
	}

	viperInstance.SetEnvPrefix(loader.sources.EnvironmentPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(configurationKeySeparatorConstant, environmentKeySeparatorConstant))
	viperInstance.AutomaticEnv()

	if readError := viperInstance.MergeInConfig(); readError != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if explicitFile || !errors.As(readError, &notFoundError) {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	if unmarshalError := viperInstance.Unmarshal(target); unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}
