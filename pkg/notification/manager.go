package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/lintwatch/notify-go/pkg/log"
)

// Config holds Manager configuration.
type Config struct {
	// Logger receives operational log output. Defaults to slog.Default().
	Logger *slog.Logger

	// EventLogger receives a trace of every subscription transition.
	EventLogger log.Logger

	// Metrics receives subscription metrics.
	Metrics Recorder
}

// DefaultConfig returns a Config with logging to slog.Default() and
// tracing and metrics disabled.
func DefaultConfig() Config {
	return Config{
		Logger:      slog.Default(),
		EventLogger: log.NoopLogger{},
		Metrics:     noopRecorder{},
	}
}

// Manager keeps one transport subscription per remote project key, shared by
// all modules bound to that key.
type Manager struct {
	mu sync.RWMutex

	factory    ListenerFactory
	subscriber Subscriber
	finder     ModuleInfoFinder

	// Open subscriptions by remote project key
	records map[string]*record
	closed  bool

	logger  *slog.Logger
	events  log.Logger
	metrics Recorder
}

// record is the state of one open transport subscription.
type record struct {
	id       string
	listener Listener
	modules  map[string]struct{}
}

// NewManager creates a Manager with the default configuration.
func NewManager(factory ListenerFactory, subscriber Subscriber, finder ModuleInfoFinder) *Manager {
	return NewManagerWithConfig(factory, subscriber, finder, DefaultConfig())
}

// NewManagerWithConfig creates a Manager with a custom configuration.
func NewManagerWithConfig(factory ListenerFactory, subscriber Subscriber, finder ModuleInfoFinder, config Config) *Manager {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.EventLogger == nil {
		config.EventLogger = log.NoopLogger{}
	}
	if config.Metrics == nil {
		config.Metrics = noopRecorder{}
	}

	return &Manager{
		factory:    factory,
		subscriber: subscriber,
		finder:     finder,
		records:    make(map[string]*record),
		logger:     config.Logger,
		events:     config.EventLogger,
		metrics:    config.Metrics,
	}
}

// Subscribe registers p for notifications of its remote project.
//
// The first module of a remote project opens the transport subscription with a
// new listener. Later modules of the same project only join it. Subscribing a
// module that is already registered does nothing.
//
// If the transport subscription cannot be opened, the error is returned and
// nothing is registered.
func (m *Manager) Subscribe(ctx context.Context, p Project) error {
	projectKey := m.finder.ProjectKey(p)
	if projectKey == "" {
		return fmt.Errorf("subscribe %s: %w", p.Name(), ErrProjectNotBound)
	}
	moduleKey := m.finder.ModuleKey(p)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}

	if rec, exists := m.records[projectKey]; exists {
		if _, member := rec.modules[moduleKey]; member {
			return nil
		}
		rec.modules[moduleKey] = struct{}{}
		m.logger.Debug("module joined notification subscription",
			"project", p.Name(), "projectKey", projectKey, "moduleKey", moduleKey, "members", len(rec.modules))
		m.trace(log.KindJoin, projectKey, moduleKey, p, rec, nil)
		return nil
	}

	rec := &record{
		id:       uuid.New().String(),
		listener: m.factory.Create(),
		modules:  map[string]struct{}{moduleKey: {}},
	}

	err := m.subscriber.Subscribe(ctx, p, projectKey, rec.listener)
	m.metrics.TransportCall(OpSubscribe, err)
	if err != nil {
		m.logger.Warn("failed to subscribe to notifications",
			"project", p.Name(), "projectKey", projectKey, "error", err)
		rec.modules = nil
		m.trace(log.KindError, projectKey, moduleKey, p, rec, &log.ErrorEventData{Op: OpSubscribe, Message: err.Error()})
		return fmt.Errorf("subscribe %s: %w", projectKey, err)
	}

	m.records[projectKey] = rec
	m.metrics.SetOpen(len(m.records))
	m.logger.Info("subscribed to notifications",
		"project", p.Name(), "projectKey", projectKey, "subscription", rec.id)
	m.trace(log.KindOpen, projectKey, moduleKey, p, rec, nil)
	return nil
}

// Unsubscribe removes p from its remote project's subscription.
//
// The transport subscription is closed when the last module leaves. Removing a
// project that is not subscribed does nothing.
//
// If the transport subscription cannot be closed, the error is returned and p
// stays registered.
func (m *Manager) Unsubscribe(ctx context.Context, p Project) error {
	projectKey := m.finder.ProjectKey(p)
	if projectKey == "" {
		return nil
	}
	moduleKey := m.finder.ModuleKey(p)

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.records[projectKey]
	if !exists {
		return nil
	}
	if _, member := rec.modules[moduleKey]; !member {
		return nil
	}

	delete(rec.modules, moduleKey)
	if len(rec.modules) > 0 {
		m.logger.Debug("module left notification subscription",
			"project", p.Name(), "projectKey", projectKey, "moduleKey", moduleKey, "members", len(rec.modules))
		m.trace(log.KindLeave, projectKey, moduleKey, p, rec, nil)
		return nil
	}

	err := m.subscriber.Unsubscribe(ctx, rec.listener)
	m.metrics.TransportCall(OpUnsubscribe, err)
	if err != nil {
		rec.modules[moduleKey] = struct{}{}
		m.logger.Warn("failed to unsubscribe from notifications",
			"project", p.Name(), "projectKey", projectKey, "error", err)
		m.trace(log.KindError, projectKey, moduleKey, p, rec, &log.ErrorEventData{Op: OpUnsubscribe, Message: err.Error()})
		return fmt.Errorf("unsubscribe %s: %w", projectKey, err)
	}

	delete(m.records, projectKey)
	m.metrics.SetOpen(len(m.records))
	m.logger.Info("unsubscribed from notifications",
		"project", p.Name(), "projectKey", projectKey, "subscription", rec.id)
	m.trace(log.KindClose, projectKey, moduleKey, p, rec, nil)
	return nil
}

// SubscriberCount returns the number of open transport subscriptions, which is
// the number of remote projects with at least one subscribed module.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// IsSubscribed reports whether p is registered with an open subscription.
func (m *Manager) IsSubscribed(p Project) bool {
	projectKey := m.finder.ProjectKey(p)
	if projectKey == "" {
		return false
	}
	moduleKey := m.finder.ModuleKey(p)

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[projectKey]
	if !exists {
		return false
	}
	_, member := rec.modules[moduleKey]
	return member
}

// ProjectKeys returns the remote project keys with an open subscription, sorted.
func (m *Manager) ProjectKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.records))
	for key := range m.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ModuleKeys returns the module keys registered for projectKey, sorted.
// It returns nil if there is no open subscription for projectKey.
func (m *Manager) ModuleKeys(projectKey string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[projectKey]
	if !exists {
		return nil
	}
	keys := make([]string, 0, len(rec.modules))
	for key := range rec.modules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Close closes every open transport subscription and rejects further
// subscriptions. Subscriptions that fail to close are dropped anyway; their
// errors are combined in the returned error.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	keys := make([]string, 0, len(m.records))
	for key := range m.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs error
	for _, projectKey := range keys {
		rec := m.records[projectKey]
		err := m.subscriber.Unsubscribe(ctx, rec.listener)
		m.metrics.TransportCall(OpUnsubscribe, err)
		if err != nil {
			m.trace(log.KindError, projectKey, "", nil, rec, &log.ErrorEventData{Op: OpUnsubscribe, Message: err.Error()})
			errs = multierr.Append(errs, fmt.Errorf("unsubscribe %s: %w", projectKey, err))
		}
		delete(m.records, projectKey)
		rec.modules = nil
		m.trace(log.KindClose, projectKey, "", nil, rec, nil)
	}
	m.metrics.SetOpen(0)

	if errs != nil {
		m.logger.Warn("notification manager closed with errors", "error", errs)
	}
	return errs
}

// trace records a transition. Must be called with m.mu held.
func (m *Manager) trace(kind log.Kind, projectKey, moduleKey string, p Project, rec *record, errData *log.ErrorEventData) {
	event := log.Event{
		Timestamp:      time.Now(),
		Kind:           kind,
		ProjectKey:     projectKey,
		ModuleKey:      moduleKey,
		SubscriptionID: rec.id,
		Members:        len(rec.modules),
		Error:          errData,
	}
	if p != nil {
		event.Project = p.Name()
	}
	m.events.Log(event)
}
