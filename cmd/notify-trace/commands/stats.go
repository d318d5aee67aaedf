package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/lintwatch/notify-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents  int
	EventsByKind map[log.Kind]int
	Projects     map[string]*ProjectStats
	Errors       int
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// ProjectStats holds statistics for a single remote project key.
type ProjectStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Opens      int
	MaxMembers int
	Open       bool
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[log.Kind]int),
		Projects:     make(map[string]*ProjectStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByKind[event.Kind]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	ps, ok := s.Projects[event.ProjectKey]
	if !ok {
		ps = &ProjectStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Projects[event.ProjectKey] = ps
	}
	ps.Events++
	if event.Timestamp.After(ps.LastSeen) {
		ps.LastSeen = event.Timestamp
	}
	if event.Members > ps.MaxMembers {
		ps.MaxMembers = event.Members
	}

	switch event.Kind {
	case log.KindOpen:
		ps.Opens++
		ps.Open = true
	case log.KindClose:
		ps.Open = false
	case log.KindError:
		s.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Subscription Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range []log.Kind{log.KindOpen, log.KindJoin, log.KindLeave, log.KindClose, log.KindError} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Projects: %d\n", len(stats.Projects))
	if len(stats.Projects) > 0 {
		keys := make([]string, 0, len(stats.Projects))
		for key := range stats.Projects {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintln(w)
		for _, key := range keys {
			ps := stats.Projects[key]
			state := "closed"
			if ps.Open {
				state = "open"
			}
			fmt.Fprintf(w, "  [%s] %d events, %d opens, max %d modules, %s\n",
				key, ps.Events, ps.Opens, ps.MaxMembers, state)
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
