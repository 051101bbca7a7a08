package script_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/colorline/internal/script"
	"github.com/temirov/colorline/internal/ui"
)

var testDefaults = script.Defaults{Color: ui.ColorGreen, Tag: "INFO"}

func TestBuildOperations(testInstance *testing.T) {
	testCases := []struct {
		name              string
		step              script.StepConfiguration
		expectedOperation script.Operation
		expectError       bool
	}{
		{
			name: "emit_with_defaults",
			step: script.StepConfiguration{
				Operation: script.OperationTypeEmit,
				Options:   map[string]any{"message": "hello"},
			},
			expectedOperation: &script.EmitOperation{Color: ui.ColorGreen, Tag: "INFO", Message: "hello"},
		},
		{
			name: "emit_with_template",
			step: script.StepConfiguration{
				Operation: script.OperationTypeEmit,
				Options:   map[string]any{"color": "Red", "tag": "ERROR", "message": "%d failed", "arguments": []any{2}},
			},
			expectedOperation: &script.EmitOperation{Color: ui.ColorRed, Tag: "ERROR", Message: "%d failed", Arguments: []any{2}},
		},
		{
			name: "emit_non_string_message",
			step: script.StepConfiguration{
				Operation: script.OperationTypeEmit,
				Options:   map[string]any{"message": true},
			},
			expectedOperation: &script.EmitOperation{Color: ui.ColorGreen, Tag: "INFO", Message: true},
		},
		{
			name: "tick_with_defaults",
			step: script.StepConfiguration{Operation: script.OperationTypeTick},
			expectedOperation: &script.TickOperation{
				Color:   ui.ColorGreen,
				Counter: "default",
				Active:  true,
				Repeat:  1,
			},
		},
		{
			name: "tick_with_options",
			step: script.StepConfiguration{
				Operation: script.OperationTypeTick,
				Options:   map[string]any{"color": "cyan", "counter": "download", "active": false, "repeat": "4", "interval": "15ms"},
			},
			expectedOperation: &script.TickOperation{
				Color:    ui.ColorCyan,
				Counter:  "download",
				Active:   false,
				Repeat:   4,
				Interval: 15 * time.Millisecond,
			},
		},
		{
			name: "finish_named_counter",
			step: script.StepConfiguration{
				Operation: script.OperationTypeFinish,
				Options:   map[string]any{"counter": "download"},
			},
			expectedOperation: &script.FinishOperation{Counter: "download"},
		},
		{
			name:        "unsupported_operation",
			step:        script.StepConfiguration{Operation: script.OperationType("blink")},
			expectError: true,
		},
		{
			name: "emit_missing_message",
			step: script.StepConfiguration{
				Operation: script.OperationTypeEmit,
				Options:   map[string]any{"tag": "INFO"},
			},
			expectError: true,
		},
		{
			name: "unknown_color",
			step: script.StepConfiguration{
				Operation: script.OperationTypeEmit,
				Options:   map[string]any{"color": "orange", "message": "hello"},
			},
			expectError: true,
		},
		{
			name: "unknown_option",
			step: script.StepConfiguration{
				Operation: script.OperationTypeFinish,
				Options:   map[string]any{"counter": "a", "colour": "red"},
			},
			expectError: true,
		},
		{
			name: "non_positive_repeat",
			step: script.StepConfiguration{
				Operation: script.OperationTypeTick,
				Options:   map[string]any{"repeat": 0},
			},
			expectError: true,
		},
		{
			name: "negative_interval",
			step: script.StepConfiguration{
				Operation: script.OperationTypeTick,
				Options:   map[string]any{"interval": "-1s"},
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			operations, buildError := script.BuildOperations(script.Configuration{Steps: []script.StepConfiguration{testCase.step}}, testDefaults)
			if testCase.expectError {
				require.Error(testInstance, buildError)
				require.Nil(testInstance, operations)
				return
			}

			require.NoError(testInstance, buildError)
			require.Len(testInstance, operations, 1)
			require.Equal(testInstance, testCase.expectedOperation, operations[0])
		})
	}
}

func TestBuildOperationsRejectsWholeScript(testInstance *testing.T) {
	configuration := script.Configuration{Steps: []script.StepConfiguration{
		{Operation: script.OperationTypeEmit, Options: map[string]any{"message": "first"}},
		{Operation: script.OperationType("blink")},
	}}

	operations, buildError := script.BuildOperations(configuration, testDefaults)
	require.Error(testInstance, buildError)
	require.Contains(testInstance, buildError.Error(), "blink")
	require.Nil(testInstance, operations)
}
