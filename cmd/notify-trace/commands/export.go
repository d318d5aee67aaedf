package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lintwatch/notify-go/pkg/log"
)

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// jsonEvent is the JSONL form of a trace event.
type jsonEvent struct {
	Timestamp      string `json:"timestamp"`
	Kind           string `json:"kind"`
	ProjectKey     string `json:"projectKey"`
	ModuleKey      string `json:"moduleKey,omitempty"`
	Project        string `json:"project,omitempty"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	Members        int    `json:"members"`
	Op             string `json:"op,omitempty"`
	Error          string `json:"error,omitempty"`
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		je := jsonEvent{
			Timestamp:      event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			Kind:           event.Kind.String(),
			ProjectKey:     event.ProjectKey,
			ModuleKey:      event.ModuleKey,
			Project:        event.Project,
			SubscriptionID: event.SubscriptionID,
			Members:        event.Members,
		}
		if event.Error != nil {
			je.Op = event.Error.Op
			je.Error = event.Error.Message
		}
		if err := encoder.Encode(je); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "kind", "project_key", "module_key", "project", "subscription_id", "members", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		errMsg := ""
		if event.Error != nil {
			errMsg = event.Error.Op + ": " + event.Error.Message
		}
		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.Kind.String(),
			event.ProjectKey,
			event.ModuleKey,
			event.Project,
			event.SubscriptionID,
			strconv.Itoa(event.Members),
			errMsg,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
}
