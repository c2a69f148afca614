package react

import "github.com/AnatoleLucet/react/internal"

// connector holds the listening half shared by Signal and Reactor.
type connector[T any] struct {
	dispatcher *internal.Dispatcher[T]
}

// Connect registers slot at the default priority.
func (c connector[T]) Connect(slot Slot[T]) Connection {
	return c.dispatcher.Register(DefaultPriority, slot)
}

// ConnectUnit registers a listener that doesn't care about the emitted value.
func (c connector[T]) ConnectUnit(slot UnitSlot) Connection {
	return c.dispatcher.Register(DefaultPriority, unit[T](slot))
}

// WithPriority returns a connector registering listeners at priority p.
func (c connector[T]) WithPriority(p int) Prioritized[T] {
	return Prioritized[T]{dispatcher: c.dispatcher, priority: p}
}

// HasConnections reports whether at least one listener is connected.
func (c connector[T]) HasConnections() bool {
	return c.dispatcher.Len() > 0
}

// Reactor is the listen-only side of a signal: it can be connected to but
// never emits.
type Reactor[T any] struct {
	connector[T]
}

// Prioritized connects listeners at a fixed priority.
type Prioritized[T any] struct {
	dispatcher *internal.Dispatcher[T]
	priority   int
}

func (p Prioritized[T]) Connect(slot Slot[T]) Connection {
	return p.dispatcher.Register(p.priority, slot)
}

func (p Prioritized[T]) ConnectUnit(slot UnitSlot) Connection {
	return p.dispatcher.Register(p.priority, unit[T](slot))
}
