package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestSlog(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSlogAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(newTestSlog(&buf))

	adapter.Log(Event{
		Timestamp:      time.Now(),
		Kind:           KindJoin,
		ProjectKey:     "pkey1",
		ModuleKey:      "mkey2",
		Project:        "app-web",
		SubscriptionID: "sub-1",
		Members:        2,
	})

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG",
		"kind=JOIN",
		"project_key=pkey1",
		"module_key=mkey2",
		"project=app-web",
		"subscription_id=sub-1",
		"members=2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSlogAdapterOmitsEmptyOptionalFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(newTestSlog(&buf))

	adapter.Log(Event{Kind: KindClose, ProjectKey: "pkey1"})

	out := buf.String()
	if strings.Contains(out, "module_key=") {
		t.Errorf("output should not contain module_key:\n%s", out)
	}
	if strings.Contains(out, "subscription_id=") {
		t.Errorf("output should not contain subscription_id:\n%s", out)
	}
}

func TestSlogAdapterErrorAtWarn(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(newTestSlog(&buf))

	adapter.Log(Event{
		Kind:       KindError,
		ProjectKey: "pkey1",
		Error:      &ErrorEventData{Op: "unsubscribe", Message: "timeout"},
	})

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("error events should log at WARN:\n%s", out)
	}
	if !strings.Contains(out, "op=unsubscribe") || !strings.Contains(out, "error=timeout") {
		t.Errorf("output missing error fields:\n%s", out)
	}
}
