package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configurationLoadErrorTemplateConstant        = "failed to load script: %w"
	configurationParseErrorTemplateConstant       = "failed to parse script: %w"
	configurationPathRequiredMessageConstant      = "script path must be provided"
	configurationEmptyStepsMessageConstant        = "script must define at least one step"
	configurationOperationMissingTemplateConstant = "script step %d missing operation name"
)

// OperationType identifies supported script operations.
type OperationType string

// Supported script operations.
const (
	OperationTypeEmit   OperationType = OperationType("emit")
	OperationTypeTick   OperationType = OperationType("tick")
	OperationTypeFinish OperationType = OperationType("finish")
)

// Configuration describes the ordered steps of a script.
type Configuration struct {
	Steps []StepConfiguration `yaml:"steps"`
}

// StepConfiguration associates an operation with its declarative options.
type StepConfiguration struct {
	Operation OperationType  `yaml:"operation"`
	Options   map[string]any `yaml:"with"`
}

// LoadConfiguration reads a script from disk.
func LoadConfiguration(filePath string) (Configuration, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return Configuration{}, errors.New(configurationPathRequiredMessageConstant)
	}

	contentBytes, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return Configuration{}, fmt.Errorf(configurationLoadErrorTemplateConstant, readError)
	}

	return ParseConfiguration(contentBytes)
}

// ParseConfiguration decodes a script from YAML content. Steps may sit at the top level or
// under a "script" key.
func ParseConfiguration(content []byte) (Configuration, error) {
	var configuration Configuration
	if unmarshalError := yaml.Unmarshal(content, &configuration); unmarshalError != nil {
		return Configuration{}, fmt.Errorf(configurationParseErrorTemplateConstant, unmarshalError)
	}

	if len(configuration.Steps) == 0 {
		var wrapper struct {
			Script Configuration `yaml:"script"`
		}
		if nestedError := yaml.Unmarshal(content, &wrapper); nestedError == nil {
			configuration = wrapper.Script
		}
	}

	if len(configuration.Steps) == 0 {
		return Configuration{}, errors.New(configurationEmptyStepsMessageConstant)
	}

	for stepIndex := range configuration.Steps {
		trimmedOperation := strings.ToLower(strings.TrimSpace(string(configuration.Steps[stepIndex].Operation)))
		if len(trimmedOperation) == 0 {
			return Configuration{}, fmt.Errorf(configurationOperationMissingTemplateConstant, stepIndex+1)
		}
		configuration.Steps[stepIndex].Operation = OperationType(trimmedOperation)
	}

	return configuration, nil
}
