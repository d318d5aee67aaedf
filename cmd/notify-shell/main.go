// Command notify-shell hosts a notification subscription Manager behind an
// interactive shell, with a simulated analysis server as transport.
//
// It is the reference host for the notification package:
//   - project bindings loaded from YAML
//   - one transport subscription per remote project, shared by its modules
//   - optional CBOR trace of every subscription transition
//   - optional Prometheus metrics endpoint
//
// Usage:
//
//	notify-shell [flags]
//
// Flags:
//
//	-b, --bindings string      Project bindings file (YAML)
//	-t, --trace string         Append a subscription trace to this file
//	    --metrics-addr string  Serve Prometheus metrics on this address
//	    --log-level string     Log level: debug, info, warn, error (default "info")
//	    --queue-size int       Notification delivery queue size (default 256)
//
// Examples:
//
//	# Start with bindings and a trace file
//	notify-shell --bindings bindings.yaml --trace session.ntrace
//
//	# Expose metrics
//	notify-shell -b bindings.yaml --metrics-addr :9102
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/lintwatch/notify-go/cmd/notify-shell/interactive"
	"github.com/lintwatch/notify-go/pkg/binding"
	"github.com/lintwatch/notify-go/pkg/log"
	"github.com/lintwatch/notify-go/pkg/metrics"
	"github.com/lintwatch/notify-go/pkg/notification"
)

// Config holds the shell configuration.
type Config struct {
	BindingsFile string
	TraceFile    string
	MetricsAddr  string
	LogLevel     string
	QueueSize    int
}

var config Config

func init() {
	pflag.StringVarP(&config.BindingsFile, "bindings", "b", "", "Project bindings file (YAML)")
	pflag.StringVarP(&config.TraceFile, "trace", "t", "", "Append a subscription trace to this file")
	pflag.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	pflag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pflag.IntVar(&config.QueueSize, "queue-size", notification.DefaultQueueSize, "Notification delivery queue size")
}

func main() {
	pflag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "notify-shell: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := parseLevel(config.LogLevel)
	if err != nil {
		return err
	}

	file := &binding.File{}
	if config.BindingsFile != "" {
		file, err = binding.Load(config.BindingsFile)
		if err != nil {
			return err
		}
	}
	finder := binding.NewFinder(file)

	term, err := interactive.NewTerminal()
	if err != nil {
		return err
	}
	logger := newLogger(term.Stderr(), level)
	slog.SetDefault(logger)

	managerConfig := notification.DefaultConfig()
	managerConfig.Logger = logger

	if config.TraceFile != "" {
		trace, err := log.NewFileLogger(config.TraceFile)
		if err != nil {
			return fmt.Errorf("failed to open trace file: %w", err)
		}
		defer func() {
			if err := trace.Close(); err != nil {
				logger.Warn("subscription trace incomplete", "file", config.TraceFile, "events", trace.Written(), "error", err)
			}
		}()
		managerConfig.EventLogger = log.NewMultiLogger(log.NewSlogAdapter(logger), trace)
	} else {
		managerConfig.EventLogger = log.NewSlogAdapter(logger)
	}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	managerConfig.Metrics = recorder

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              config.MetricsAddr,
			Handler:           metrics.Handler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		logger.Info("serving metrics", "addr", config.MetricsAddr)
	}

	transport := interactive.NewSimTransport()
	dispatcher := notification.NewDispatcher(config.QueueSize)
	manager := notification.NewManagerWithConfig(
		dispatcher,
		transport,
		binding.NewCachingFinder(finder, binding.DefaultCacheSettings()),
		managerConfig,
	)

	shell := interactive.New(term, interactive.Deps{
		Manager:    manager,
		Transport:  transport,
		Finder:     finder,
		Dispatcher: dispatcher,
	})
	dispatcher.Start()
	defer dispatcher.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("notify-shell ready", "bindings", finder.Projects())
	shell.Run(ctx, cancel)

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	return manager.Close(closeCtx)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
