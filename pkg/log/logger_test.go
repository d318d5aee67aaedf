package log

import (
	"testing"
	"time"
)

func TestNoopLoggerZeroValue(t *testing.T) {
	var l NoopLogger
	// Should not panic
	l.Log(Event{Timestamp: time.Now(), Kind: KindOpen, ProjectKey: "pkey1"})
}

func TestNoopLoggerImplementsLogger(t *testing.T) {
	var _ Logger = NoopLogger{}
	var _ Logger = &NoopLogger{}
}
