// Package log captures a machine-readable trace of subscription state changes.
//
// It is separate from operational logging (slog). Every transition the
// notification Manager makes (a transport subscription opening or closing, a
// module joining or leaving an open subscription, a transport failure) is
// recorded as an Event.
//
// # Basic Usage
//
//	// Console output via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// Binary trace file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/notify/subscriptions.ntrace")
//
//	// Both
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events using integer keys.
// NewFileLogger appends to an existing trace; CreateFileLogger replaces it.
// The notify-trace command views and summarizes them.
package log
