// Package commands implements the notify-trace CLI commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/lintwatch/notify-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	ProjectKey string
	Kind       *log.Kind
}

// RunView reads the trace file and writes matching events to w.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		ProjectKey: filter.ProjectKey,
		Kind:       filter.Kind,
	})
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [sub:id] KIND projectKey
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [sub:%s] %-5s %s\n", ts, shortenID(event.SubscriptionID), event.Kind, event.ProjectKey)

	if event.Project != "" {
		fmt.Fprintf(w, "  Project: %s\n", event.Project)
	}
	if event.ModuleKey != "" {
		fmt.Fprintf(w, "  Module:  %s\n", event.ModuleKey)
	}
	fmt.Fprintf(w, "  Members: %d\n", event.Members)
	if event.Error != nil {
		fmt.Fprintf(w, "  Error:   %s: %s\n", event.Error.Op, event.Error.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a subscription ID.
func shortenID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseKindFlag parses a --kind flag value.
func ParseKindFlag(s string) (log.Kind, error) {
	k, ok := log.ParseKind(s)
	if !ok {
		return 0, fmt.Errorf("invalid kind: %s (valid: open, join, leave, close, error)", s)
	}
	return k, nil
}

// ParseTimeFlag parses an RFC3339 time flag value.
func ParseTimeFlag(name, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format: %w", name, err)
	}
	return t, nil
}
