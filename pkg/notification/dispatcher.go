package notification

import (
	"context"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the Dispatcher queue capacity used when none is given.
const DefaultQueueSize = 256

// Dispatcher is a ListenerFactory whose listeners hand notifications to a
// background goroutine, which delivers them to the registered handlers.
// Listeners never block the transport: when the queue is full the
// notification is dropped and counted.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []func(Notification)

	queue     chan Notification
	dropped   atomic.Uint64
	delivered atomic.Uint64

	// Background processing. lifecycle guards ctx, cancel and running.
	lifecycle sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	processWg sync.WaitGroup
	running   bool
}

// NewDispatcher creates a Dispatcher with a queue of the given capacity.
// A non-positive size selects DefaultQueueSize.
func NewDispatcher(queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		queue: make(chan Notification, queueSize),
	}
}

// OnNotification registers a handler. Handlers run on the delivery goroutine
// in registration order.
func (d *Dispatcher) OnNotification(fn func(Notification)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, fn)
}

// Create returns a new listener feeding this dispatcher.
func (d *Dispatcher) Create() Listener {
	return &dispatchListener{d: d}
}

// Start begins background delivery.
func (d *Dispatcher) Start() {
	d.lifecycle.Lock()
	defer d.lifecycle.Unlock()

	if d.running {
		return
	}
	d.running = true
	d.ctx, d.cancel = context.WithCancel(context.Background())
	d.processWg.Add(1)
	go d.processLoop(d.ctx)
}

// Stop delivers what is already queued and stops background delivery.
// Handlers must not call Start or Stop.
func (d *Dispatcher) Stop() {
	d.lifecycle.Lock()
	defer d.lifecycle.Unlock()

	if !d.running {
		return
	}
	d.running = false
	d.cancel()
	d.processWg.Wait()
}

// Dropped returns the number of notifications dropped because the queue was full.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Delivered returns the number of notifications handed to the handlers.
func (d *Dispatcher) Delivered() uint64 {
	return d.delivered.Load()
}

func (d *Dispatcher) enqueue(n Notification) {
	select {
	case d.queue <- n:
	default:
		d.dropped.Add(1)
	}
}

func (d *Dispatcher) processLoop(ctx context.Context) {
	defer d.processWg.Done()

	for {
		select {
		case n := <-d.queue:
			d.deliver(n)
		case <-ctx.Done():
			for {
				select {
				case n := <-d.queue:
					d.deliver(n)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(n Notification) {
	d.mu.RLock()
	handlers := d.handlers
	d.mu.RUnlock()

	for _, fn := range handlers {
		fn(n)
	}
	d.delivered.Add(1)
}

// dispatchListener is the Listener handed to the transport.
type dispatchListener struct {
	d *Dispatcher
}

func (l *dispatchListener) Handle(n Notification) {
	l.d.enqueue(n)
}

// Compile-time interface satisfaction checks.
var (
	_ ListenerFactory = (*Dispatcher)(nil)
	_ Listener        = (*dispatchListener)(nil)
)
