package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/multierr"
)

// FileLogger writes trace events to a file. It is safe for concurrent use.
//
// Log cannot return an error, so the first write failure is kept. Later
// events are discarded, since a partially written event leaves the rest of
// the file unreadable. Err and Close report the failure.
type FileLogger struct {
	mu      sync.Mutex
	file    *os.File
	encoder *cbor.Encoder
	written int
	err     error
	closed  bool
}

// NewFileLogger opens path for appending, creating it if needed. Successive
// sessions writing the same path produce a single readable trace.
func NewFileLogger(path string) (*FileLogger, error) {
	return openFileLogger(path, os.O_APPEND)
}

// CreateFileLogger creates path, replacing any existing content.
func CreateFileLogger(path string) (*FileLogger, error) {
	return openFileLogger(path, os.O_TRUNC)
}

func openFileLogger(path string, mode int) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|mode, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := newEncoder(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &FileLogger{file: f, encoder: enc}, nil
}

// Log writes an event. It does nothing after Close or after a write failure.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.err != nil {
		return
	}
	if err := l.encoder.Encode(event); err != nil {
		l.err = fmt.Errorf("write trace event %d: %w", l.written+1, err)
		return
	}
	l.written++
}

// Written returns the number of events written.
func (l *FileLogger) Written() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.written
}

// Err returns the first write failure, if any.
func (l *FileLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close closes the file and returns the first write failure combined with
// any close error. Calling Close again returns the write failure only.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return l.err
	}
	l.closed = true
	return multierr.Append(l.err, l.file.Close())
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
