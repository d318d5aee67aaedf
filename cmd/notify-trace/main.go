// Command notify-trace is a tool for viewing and analyzing subscription
// trace files.
//
// Trace files are written by notify-shell when run with the --trace flag.
//
// Usage:
//
//	notify-trace <command> [flags] <file.ntrace>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSONL or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	notify-trace view session.ntrace
//
//	# View only subscription openings for one project
//	notify-trace view --kind open --project-key org:app session.ntrace
//
//	# Export to CSV
//	notify-trace export --format csv -o session.csv session.ntrace
//
//	# Keep only failed transport calls
//	notify-trace filter --kind error -o errors.ntrace session.ntrace
//
//	# Show statistics
//	notify-trace stats session.ntrace
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/lintwatch/notify-go/cmd/notify-trace/commands"
)

const usage = `notify-trace - Subscription Trace Analyzer

Usage:
  notify-trace <command> [flags] <file.ntrace>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSONL or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "notify-trace <command> --help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a subcommand flag set with the shared usage layout.
func newFlagSet(name, summary string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "notify-trace %s - %s\n\nUsage:\n  notify-trace %s [flags] <file.ntrace>\n\nFlags:\n", name, summary, name)
		fs.PrintDefaults()
	}
	return fs
}

// tracePath returns the single positional argument or exits.
func tracePath(fs *pflag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := newFlagSet("view", "View trace file in human-readable format")
	projectKey := fs.StringP("project-key", "p", "", "Filter by remote project key")
	kind := fs.StringP("kind", "k", "", "Filter by kind (open, join, leave, close, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := tracePath(fs)

	filter := commands.ViewFilter{ProjectKey: *projectKey}
	if *kind != "" {
		k, err := commands.ParseKindFlag(*kind)
		if err != nil {
			fail(err)
		}
		filter.Kind = &k
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := newFlagSet("export", "Export trace file to JSONL or CSV format")
	format := fs.StringP("format", "f", "jsonl", "Output format (jsonl, csv)")
	output := fs.StringP("output", "o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := tracePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := newFlagSet("filter", "Filter trace file and write to new file")

	var opts commands.FilterOptions
	fs.StringVarP(&opts.Output, "output", "o", "", "Output file (required)")
	fs.StringVarP(&opts.ProjectKey, "project-key", "p", "", "Filter by remote project key")
	fs.StringVar(&opts.SubscriptionID, "subscription-id", "", "Filter by subscription ID")
	fs.StringVarP(&opts.Kind, "kind", "k", "", "Filter by kind (open, join, leave, close, error)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := tracePath(fs)

	if opts.Output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	n, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, opts.Output)
}

func runStats(args []string) {
	fs := newFlagSet("stats", "Show statistics about the trace file")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := tracePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
