package ui_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/colorline/internal/ui"
)

func captureStandardOutput(testInstance *testing.T, action func()) string {
	testInstance.Helper()

	reader, writer, pipeError := os.Pipe()
	require.NoError(testInstance, pipeError)

	originalStdout := os.Stdout
	os.Stdout = writer
	defer func() {
		os.Stdout = originalStdout
	}()

	action()

	require.NoError(testInstance, writer.Close())
	capturedBytes, readError := io.ReadAll(reader)
	require.NoError(testInstance, readError)
	require.NoError(testInstance, reader.Close())

	return string(capturedBytes)
}

func TestPackageEmitWritesToStandardOutput(testInstance *testing.T) {
	testCases := []struct {
		name      string
		color     ui.Color
		tag       string
		payload   any
		arguments []any
	}{
		{name: "plain_string", color: ui.ColorGreen, tag: testInfoTagConstant, payload: "hello"},
		{name: "boolean_value", color: ui.ColorRed, tag: testErrorTagConstant, payload: true},
		{name: "format_template", color: ui.ColorYellow, tag: testWarnTagConstant, payload: "%d items, %.2f%% done", arguments: []any{5, 33.333}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			writerBuffer := &bytes.Buffer{}
			ui.NewLineEmitter(writerBuffer).Emit(testCase.color, testCase.tag, testCase.payload, testCase.arguments...)

			capturedOutput := captureStandardOutput(testInstance, func() {
				ui.Emit(testCase.color, testCase.tag, testCase.payload, testCase.arguments...)
			})

			require.Equal(testInstance, writerBuffer.String(), capturedOutput)
		})
	}
}

func TestPackageTickWritesToStandardOutput(testInstance *testing.T) {
	writerBuffer := &bytes.Buffer{}
	writerCounter := 0
	indicator := ui.NewDotIndicator(writerBuffer)
	for tickIndex := 0; tickIndex <= ui.MaximumDotCount; tickIndex++ {
		indicator.Tick(ui.ColorCyan, true, &writerCounter)
	}
	indicator.Tick(ui.ColorCyan, false, &writerCounter)

	standardOutputCounter := 0
	capturedOutput := captureStandardOutput(testInstance, func() {
		for tickIndex := 0; tickIndex <= ui.MaximumDotCount; tickIndex++ {
			ui.Tick(ui.ColorCyan, true, &standardOutputCounter)
		}
		ui.Tick(ui.ColorCyan, false, &standardOutputCounter)
	})

	require.Equal(testInstance, writerBuffer.String(), capturedOutput)
	require.Equal(testInstance, writerCounter, standardOutputCounter)
	require.Equal(testInstance, 1, standardOutputCounter)
}
