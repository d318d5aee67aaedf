package log

import (
	"testing"
	"time"
)

// recordingLogger records events for testing
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	rec1 := &recordingLogger{}
	rec2 := &recordingLogger{}
	rec3 := &recordingLogger{}

	multi := NewMultiLogger(rec1, rec2, rec3)

	multi.Log(Event{
		Timestamp:  time.Now(),
		Kind:       KindOpen,
		ProjectKey: "pkey1",
	})

	for i, rec := range []*recordingLogger{rec1, rec2, rec3} {
		if len(rec.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(rec.events))
			continue
		}
		if rec.events[0].ProjectKey != "pkey1" {
			t.Errorf("logger %d: ProjectKey = %q, want %q", i, rec.events[0].ProjectKey, "pkey1")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()

	// Should not panic with empty logger list
	multi.Log(Event{Timestamp: time.Now(), Kind: KindClose})
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	rec := &recordingLogger{}
	multi := NewMultiLogger(nil, rec, nil)

	multi.Log(Event{Kind: KindJoin})

	if len(rec.events) != 1 {
		t.Errorf("got %d events, want 1", len(rec.events))
	}
}
