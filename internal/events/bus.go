package events

import "errors"

// Event is a single emission delivered to handlers.
type Event struct {
	Name Name
	Args []any
}

// Int returns argument i as an int.
func (e Event) Int(i int) (int, bool) {
	if i >= len(e.Args) {
		return 0, false
	}
	switch v := e.Args[i].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Float returns argument i as a float64.
func (e Event) Float(i int) (float64, bool) {
	if i >= len(e.Args) {
		return 0, false
	}
	switch v := e.Args[i].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Bool returns argument i as a bool. The second result is false when the
// argument is absent, which is how an omitted explicit state is detected.
func (e Event) Bool(i int) (bool, bool) {
	if i >= len(e.Args) {
		return false, false
	}
	v, ok := e.Args[i].(bool)
	return v, ok
}

// String returns argument i as a string.
func (e Event) String(i int) (string, bool) {
	if i >= len(e.Args) {
		return "", false
	}
	v, ok := e.Args[i].(string)
	return v, ok
}

// Handler processes one event. A returned error is propagated to the emitter.
type Handler func(ev Event) error

// Observer is notified of every emission before it is dispatched.
type Observer func(name Name, subscribers int)

// Bus dispatches events to subscribers.
//
// Architecture:
//   - Single-threaded, synchronous dispatch; no queue and no locks
//   - Handlers for one name are invoked in subscription order
//   - Each Emit dispatches over a snapshot of the subscribers taken when it
//     starts; a handler registered during dispatch does not receive the
//     in-flight event
//   - Handlers may emit other events re-entrantly; re-emitting the event
//     being handled recurses without bound
type Bus struct {
	handlers map[Name][]Handler
	observer Observer
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithObserver installs an emission observer.
func WithObserver(o Observer) BusOption {
	return func(b *Bus) { b.observer = o }
}

// NewBus creates an empty bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{handlers: make(map[Name][]Handler)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// On subscribes handler to name. Subscriptions cannot be removed.
func (b *Bus) On(name Name, handler Handler) {
	b.handlers[name] = append(b.handlers[name], handler)
}

// Emit delivers the event to every current subscriber of name and returns
// the joined errors of all handlers. Every subscriber runs even when an
// earlier one fails.
func (b *Bus) Emit(name Name, args ...any) error {
	handlers := b.handlers[name]
	if b.observer != nil {
		b.observer(name, len(handlers))
	}
	if len(handlers) == 0 {
		return nil
	}
	snapshot := make([]Handler, len(handlers))
	copy(snapshot, handlers)

	ev := Event{Name: name, Args: args}
	var errs []error
	for _, h := range snapshot {
		if err := h(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HandlerCount returns the number of handlers registered for name.
func (b *Bus) HandlerCount(name Name) int {
	return len(b.handlers[name])
}

// Emitter is the publishing half of the bus.
type Emitter interface {
	Emit(name Name, args ...any) error
}

// Subscriber is the subscribing half of the bus.
type Subscriber interface {
	On(name Name, handler Handler)
}

// Verify interface compliance.
var (
	_ Emitter    = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)
