package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lintwatch/notify-go/pkg/log"
)

// ErrSameFile is returned when the filter output would overwrite its input.
var ErrSameFile = errors.New("output file is the input file")

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output         string
	ProjectKey     string
	SubscriptionID string
	Kind           string
	TimeStart      string
	TimeEnd        string
}

// RunFilter filters the trace file and writes matching events to a new
// file, replacing it if it exists. It returns the number of events written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	if err := checkDistinct(path, opts.Output); err != nil {
		return 0, err
	}

	filter := log.Filter{
		ProjectKey:     opts.ProjectKey,
		SubscriptionID: opts.SubscriptionID,
	}

	if opts.Kind != "" {
		k, err := ParseKindFlag(opts.Kind)
		if err != nil {
			return 0, err
		}
		filter.Kind = &k
	}
	if opts.TimeStart != "" {
		t, err := ParseTimeFlag("time-start", opts.TimeStart)
		if err != nil {
			return 0, err
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := ParseTimeFlag("time-end", opts.TimeEnd)
		if err != nil {
			return 0, err
		}
		filter.TimeEnd = &t
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	logger, err := log.CreateFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Close()
			return logger.Written(), fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		if err := logger.Err(); err != nil {
			break
		}
	}

	if err := logger.Close(); err != nil {
		return logger.Written(), fmt.Errorf("failed to write output file: %w", err)
	}
	return logger.Written(), nil
}

// checkDistinct rejects an output path that names the input file.
func checkDistinct(input, output string) error {
	in, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	out, err := os.Stat(output)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check output file: %w", err)
	}
	if os.SameFile(in, out) {
		return fmt.Errorf("%s: %w", output, ErrSameFile)
	}
	return nil
}
