package utils_test

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/colorline/internal/utils"
)

const (
	testFlushingPayloadConstant    = "\r[INFO] ..."
	testFlushingBufferSizeConstant = 4096
	testFlushFailureConstant       = "flush failed"
)

type failingFlushWriter struct {
	bytes.Buffer
}

func (writer *failingFlushWriter) Flush() error {
	return errors.New(testFlushFailureConstant)
}

func TestFlushingWriterFlushesBufferedDestination(testInstance *testing.T) {
	destination := &bytes.Buffer{}
	bufferedDestination := bufio.NewWriterSize(destination, testFlushingBufferSizeConstant)

	writer := utils.NewFlushingWriter(bufferedDestination)

	bytesWritten, writeError := writer.Write([]byte(testFlushingPayloadConstant))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, len(testFlushingPayloadConstant), bytesWritten)
	require.Equal(testInstance, 0, bufferedDestination.Buffered())
	require.Equal(testInstance, testFlushingPayloadConstant, destination.String())
}

func TestFlushingWriterPassesThroughUnbufferedDestination(testInstance *testing.T) {
	destination := &bytes.Buffer{}

	writer := utils.NewFlushingWriter(destination)

	_, writeError := writer.Write([]byte(testFlushingPayloadConstant))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, testFlushingPayloadConstant, destination.String())
}

func TestFlushingWriterReportsFlushFailure(testInstance *testing.T) {
	destination := &failingFlushWriter{}

	writer := utils.NewFlushingWriter(destination)

	bytesWritten, writeError := writer.Write([]byte(testFlushingPayloadConstant))
	require.EqualError(testInstance, writeError, testFlushFailureConstant)
	require.Equal(testInstance, len(testFlushingPayloadConstant), bytesWritten)
}

func TestNewFlushingWriterWrapping(testInstance *testing.T) {
	require.Nil(testInstance, utils.NewFlushingWriter(nil))

	wrapped := utils.NewFlushingWriter(&bytes.Buffer{})
	require.Same(testInstance, wrapped, utils.NewFlushingWriter(wrapped))
}
