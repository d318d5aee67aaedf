package log

import (
	"strings"
	"time"
)

// Event is a single subscription state change.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Kind of transition.
	Kind Kind `cbor:"2,keyasint"`

	// ProjectKey is the remote project key.
	ProjectKey string `cbor:"3,keyasint"`

	// ModuleKey is the module that caused the transition.
	ModuleKey string `cbor:"4,keyasint,omitempty"`

	// Project is the local project name.
	Project string `cbor:"5,keyasint,omitempty"`

	// SubscriptionID identifies the transport subscription (UUID).
	SubscriptionID string `cbor:"6,keyasint,omitempty"`

	// Members is the number of modules registered after the transition.
	Members int `cbor:"7,keyasint"`

	// Error is set for KindError.
	Error *ErrorEventData `cbor:"8,keyasint,omitempty"`
}

// Kind classifies a subscription transition.
type Kind uint8

const (
	// KindOpen indicates a transport subscription was opened.
	KindOpen Kind = 0
	// KindJoin indicates a module joined an open subscription.
	KindJoin Kind = 1
	// KindLeave indicates a module left a subscription that stays open.
	KindLeave Kind = 2
	// KindClose indicates a transport subscription was closed.
	KindClose Kind = 3
	// KindError indicates a transport call failed.
	KindError Kind = 4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "OPEN"
	case KindJoin:
		return "JOIN"
	case KindLeave:
		return "LEAVE"
	case KindClose:
		return "CLOSE"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseKind returns the Kind for a case-insensitive name.
func ParseKind(s string) (Kind, bool) {
	for k := KindOpen; k <= KindError; k++ {
		if strings.EqualFold(k.String(), s) {
			return k, true
		}
	}
	return 0, false
}

// ErrorEventData captures a failed transport call.
type ErrorEventData struct {
	// Op is the transport operation (subscribe or unsubscribe).
	Op string `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`
}
