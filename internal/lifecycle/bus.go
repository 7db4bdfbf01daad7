package lifecycle

import "sync"

// EventKind enumerates the external signals the controller reacts to.
type EventKind int

const (
	// EventAppForeground fires when the application returns to the foreground.
	EventAppForeground EventKind = iota
	// EventAppBackground fires when the application is backgrounded.
	EventAppBackground
	// EventBucketChanged fires when the active schedule tab changes; the
	// payload is the new bucket key.
	EventBucketChanged
)

// Handler receives the event payload (the bucket key for EventBucketChanged,
// empty otherwise).
type Handler func(payload string)

// Bus is an explicit subscription registry. Instances are owned by whoever
// wires a screen session together; there is no package-level bus.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[EventKind]map[int]Handler
}

// NewBus constructs an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[EventKind]map[int]Handler)}
}

// Subscribe registers a handler for an event kind and returns an unsubscribe
// function. Unsubscribing twice is a no-op.
func (b *Bus) Subscribe(kind EventKind, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[kind] == nil {
		b.subs[kind] = make(map[int]Handler)
	}
	id := b.next
	b.next++
	b.subs[kind][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[kind], id)
	}
}

// Publish invokes every handler registered for the kind, synchronously, in
// unspecified order. Handlers are snapshotted before invocation so they may
// unsubscribe themselves.
func (b *Bus) Publish(kind EventKind, payload string) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs[kind]))
	for _, fn := range b.subs[kind] {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(payload)
	}
}
