// Package notification multiplexes analysis-server notification subscriptions
// across local projects.
//
// Several local projects (modules) can be bound to the same remote project.
// The server only needs one subscription per remote project, so the Manager
// keeps a reference-counted record per remote project key:
//
//   - the first module subscribing for a key creates a Listener and opens the
//     transport subscription
//   - further modules for the same key only join the record
//   - the last module leaving closes the transport subscription with the
//     listener that opened it
//
// # Collaborators
//
// The Manager does not resolve keys, create listeners or talk to the server
// itself. These are supplied as interfaces:
//
//	ModuleInfoFinder  maps a Project to its remote project key and module key
//	ListenerFactory   creates the Listener bound to a new subscription
//	Subscriber        opens and closes the transport subscription
//
// Dispatcher is a ListenerFactory that delivers notifications to registered
// handlers on a background goroutine.
//
// # Failures
//
// Transport failures are returned to the caller and leave the Manager's
// bookkeeping as it was before the call, so the same call can be retried.
package notification
