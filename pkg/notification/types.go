package notification

import (
	"context"
	"errors"
	"time"
)

// Notification errors.
var (
	ErrProjectNotBound = errors.New("project not bound to a remote project")
	ErrManagerClosed   = errors.New("notification manager closed")
)

// Project is a locally known project or module. The Manager only passes it
// through to its collaborators.
type Project interface {
	// Name returns a human-readable name used in logs.
	Name() string
}

// ModuleInfoFinder resolves the remote keys for a local project.
// Results must be stable for a given project while it is subscribed.
type ModuleInfoFinder interface {
	// ProjectKey returns the remote project key, or "" if the project is not bound.
	ProjectKey(p Project) string

	// ModuleKey returns the key identifying the project within its remote project.
	ModuleKey(p Project) string
}

// Notification is a single event delivered by the analysis server.
type Notification struct {
	// Category is the server-side event category (e.g. "QUALITY_GATE").
	Category string

	// Message is the human-readable text.
	Message string

	// Link points to the event on the server.
	Link string

	// ProjectKey is the remote project the event belongs to.
	ProjectKey string

	// Time is when the server produced the event.
	Time time.Time
}

// Listener receives notifications for one remote project.
type Listener interface {
	Handle(n Notification)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Notification)

// Handle calls f(n).
func (f ListenerFunc) Handle(n Notification) { f(n) }

// ListenerFactory creates the listener for a newly opened subscription.
type ListenerFactory interface {
	Create() Listener
}

// ListenerFactoryFunc adapts a function to the ListenerFactory interface.
type ListenerFactoryFunc func() Listener

// Create calls f().
func (f ListenerFactoryFunc) Create() Listener { return f() }

// Subscriber opens and closes transport subscriptions on the analysis server.
// Implementations must not call back into the Manager.
type Subscriber interface {
	// Subscribe starts delivering notifications for projectKey to l.
	Subscribe(ctx context.Context, p Project, projectKey string, l Listener) error

	// Unsubscribe stops delivery to l.
	Unsubscribe(ctx context.Context, l Listener) error
}

// Recorder receives subscription metrics.
type Recorder interface {
	// SetOpen reports the number of open transport subscriptions.
	SetOpen(n int)

	// TransportCall reports a Subscriber call and its outcome.
	TransportCall(op string, err error)
}

// Transport operation names passed to Recorder.TransportCall.
const (
	OpSubscribe   = "subscribe"
	OpUnsubscribe = "unsubscribe"
)

type noopRecorder struct{}

func (noopRecorder) SetOpen(int)                 {}
func (noopRecorder) TransportCall(string, error) {}
