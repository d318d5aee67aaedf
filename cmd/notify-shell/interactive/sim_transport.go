package interactive

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/lintwatch/notify-go/pkg/notification"
)

// ErrSimulatedFailure is returned by SimTransport while failing is enabled.
var ErrSimulatedFailure = errors.New("simulated transport failure")

// SimTransport is an in-process notification.Subscriber standing in for the
// analysis server. Push delivers a notification to the listener bound to its
// project key.
type SimTransport struct {
	mu      sync.Mutex
	byKey   map[string]notification.Listener
	failing bool
}

// NewSimTransport creates a SimTransport with no open subscriptions.
func NewSimTransport() *SimTransport {
	return &SimTransport{
		byKey: make(map[string]notification.Listener),
	}
}

// Subscribe binds l to projectKey.
func (t *SimTransport) Subscribe(_ context.Context, _ notification.Project, projectKey string, l notification.Listener) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failing {
		return ErrSimulatedFailure
	}
	t.byKey[projectKey] = l
	return nil
}

// Unsubscribe releases l.
func (t *SimTransport) Unsubscribe(_ context.Context, l notification.Listener) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failing {
		return ErrSimulatedFailure
	}
	for key, bound := range t.byKey {
		if bound == l {
			delete(t.byKey, key)
			return nil
		}
	}
	return nil
}

// Push delivers n to the listener bound to n.ProjectKey.
// It reports false if no subscription is open for that key.
func (t *SimTransport) Push(n notification.Notification) bool {
	t.mu.Lock()
	l, ok := t.byKey[n.ProjectKey]
	t.mu.Unlock()

	if !ok {
		return false
	}
	l.Handle(n)
	return true
}

// SetFailing makes subsequent Subscribe and Unsubscribe calls fail.
func (t *SimTransport) SetFailing(failing bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failing = failing
}

// OpenKeys returns the project keys with a bound listener, sorted.
func (t *SimTransport) OpenKeys() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys := make([]string, 0, len(t.byKey))
	for key := range t.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Compile-time interface satisfaction check.
var _ notification.Subscriber = (*SimTransport)(nil)
