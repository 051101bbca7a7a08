package utils

import (
	"io"
	"sync"
)

type bufferedWriter interface {
	io.Writer
	Flush() error
}

// FlushingWriter forwards each write and flushes the destination immediately when the
// destination buffers its output. Console redraws rely on this because they never end in a
// newline.
type FlushingWriter struct {
	destination io.Writer
	mutex       sync.Mutex
}

// NewFlushingWriter wraps destination. Writers that are already flushing are returned unchanged.
func NewFlushingWriter(destination io.Writer) io.Writer {
	switch typedDestination := destination.(type) {
	case nil:
		return nil
	case *FlushingWriter:
		return typedDestination
	default:
		return &FlushingWriter{destination: destination}
	}
}

// Write delivers data to the destination and flushes it.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	if writer == nil || writer.destination == nil {
		return 0, nil
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	bytesWritten, writeError := writer.destination.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}
	return bytesWritten, writer.flushLocked()
}

// Flush pushes buffered destination output without writing new data.
func (writer *FlushingWriter) Flush() error {
	if writer == nil || writer.destination == nil {
		return nil
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	return writer.flushLocked()
}

func (writer *FlushingWriter) flushLocked() error {
	buffered, isBuffered := writer.destination.(bufferedWriter)
	if !isBuffered {
		return nil
	}
	return buffered.Flush()
}
