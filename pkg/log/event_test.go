package log

import (
	"testing"
	"time"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindOpen, "OPEN"},
		{KindJoin, "JOIN"},
		{KindLeave, "LEAVE"},
		{KindClose, "CLOSE"},
		{KindError, "ERROR"},
		{Kind(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("close")
	if !ok || k != KindClose {
		t.Errorf("ParseKind(close) = %v, %v; want CLOSE, true", k, ok)
	}
	k, ok = ParseKind("Join")
	if !ok || k != KindJoin {
		t.Errorf("ParseKind(Join) = %v, %v; want JOIN, true", k, ok)
	}
	if _, ok := ParseKind("bogus"); ok {
		t.Error("ParseKind(bogus) should fail")
	}
}

func TestEventEncodeDecodePreservesErrorData(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	event := Event{
		Timestamp:      ts,
		Kind:           KindError,
		ProjectKey:     "pkey1",
		ModuleKey:      "mkey1",
		Project:        "app-core",
		SubscriptionID: "6f1c9d1e-0000-4000-8000-000000000001",
		Error: &ErrorEventData{
			Op:      "subscribe",
			Message: "connection refused",
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v (nanoseconds must survive)", decoded.Timestamp, ts)
	}
	if decoded.Kind != KindError {
		t.Errorf("Kind = %v, want ERROR", decoded.Kind)
	}
	if decoded.Error == nil {
		t.Fatal("Error is nil")
	}
	if decoded.Error.Op != "subscribe" || decoded.Error.Message != "connection refused" {
		t.Errorf("Error = %+v", decoded.Error)
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("DecodeEvent should fail on invalid CBOR")
	}
}
