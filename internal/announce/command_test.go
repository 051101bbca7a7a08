package announce_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/colorline/internal/announce"
)

const (
	testConfiguredColorConstant    = "red"
	testConfiguredTagConstant      = "ERROR"
	testInvalidColorConstant       = "orange"
	testLineEmittedMessageConstant = "line emitted"
)

func TestPrintCommandScenarios(testInstance *testing.T) {
	testCases := []struct {
		name           string
		arguments      []string
		configuration  *announce.CommandConfiguration
		expectedOutput string
		expectError    bool
	}{
		{
			name:           "defaults_without_configuration",
			arguments:      []string{"hello"},
			expectedOutput: "\x1b[32m[INFO] hello\x1b[0m\n",
		},
		{
			name:           "percent_verbatim_without_arguments",
			arguments:      []string{"--color", "blue", "100% complete"},
			expectedOutput: "\x1b[34m[INFO] 100% complete\x1b[0m\n",
		},
		{
			name:           "typed_format_arguments",
			arguments:      []string{"--color", "yellow", "--tag", "WARN", "%d items, %.2f%% done", "5", "33.333"},
			expectedOutput: "\x1b[33m[WARN] 5 items, 33.33% done\x1b[0m\n",
		},
		{
			name:           "negative_number_argument",
			arguments:      []string{"%d degrees", "-5"},
			expectedOutput: "\x1b[32m[INFO] -5 degrees\x1b[0m\n",
		},
		{
			name:           "dash_arguments_after_message_are_positional",
			arguments:      []string{"%s %.1f", "--color", "-0.5"},
			expectedOutput: "\x1b[32m[INFO] --color -0.5\x1b[0m\n",
		},
		{
			name:           "dash_message_after_separator",
			arguments:      []string{"--tag", "LIST", "--", "- bullet item"},
			expectedOutput: "\x1b[32m[LIST] - bullet item\x1b[0m\n",
		},
		{
			name:           "configuration_supplies_defaults",
			arguments:      []string{"true"},
			configuration:  &announce.CommandConfiguration{Color: testConfiguredColorConstant, Tag: testConfiguredTagConstant},
			expectedOutput: "\x1b[31m[ERROR] true\x1b[0m\n",
		},
		{
			name:           "flags_override_configuration",
			arguments:      []string{"--color", "cyan", "--tag", "OK", "done"},
			configuration:  &announce.CommandConfiguration{Color: testConfiguredColorConstant, Tag: testConfiguredTagConstant},
			expectedOutput: "\x1b[36m[OK] done\x1b[0m\n",
		},
		{
			name:          "invalid_configured_color",
			arguments:     []string{"hello"},
			configuration: &announce.CommandConfiguration{Color: testInvalidColorConstant},
			expectError:   true,
		},
		{
			name:        "missing_message",
			arguments:   []string{},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			builder := announce.CommandBuilder{}
			if testCase.configuration != nil {
				configuration := *testCase.configuration
				builder.ConfigurationProvider = func() announce.CommandConfiguration {
					return configuration
				}
			}

			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			outputBuffer := &bytes.Buffer{}
			command.SilenceUsage = true
			command.SilenceErrors = true
			command.SetOut(outputBuffer)
			command.SetErr(&bytes.Buffer{})
			command.SetArgs(testCase.arguments)

			executionError := command.Execute()
			if testCase.expectError {
				require.Error(testInstance, executionError)
				require.Empty(testInstance, outputBuffer.String())
				return
			}

			require.NoError(testInstance, executionError)
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

func TestPrintCommandLogsEmission(testInstance *testing.T) {
	observedCore, observedLogs := observer.New(zapcore.DebugLevel)
	logger := zap.New(observedCore)

	builder := announce.CommandBuilder{LoggerProvider: func() *zap.Logger { return logger }}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetArgs([]string{"--tag", "DEBUG", "%s=%d", "answer", "42"})
	require.NoError(testInstance, command.Execute())

	entries := observedLogs.FilterMessage(testLineEmittedMessageConstant).All()
	require.Len(testInstance, entries, 1)
	contextMap := entries[0].ContextMap()
	require.Equal(testInstance, "green", contextMap["color"])
	require.Equal(testInstance, "DEBUG", contextMap["tag"])
	require.Equal(testInstance, int64(2), contextMap["argument_count"])
}
