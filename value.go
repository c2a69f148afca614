package react

import "github.com/AnatoleLucet/react/internal"

// ValueView is the read-only side of an observable value.
type ValueView[T any] interface {
	// Get returns the current value.
	Get() T

	// Listen registers fn to be called with the new and previous value on
	// every change.
	Listen(fn func(value, old T)) Connection

	// ListenNotify works like Listen and immediately calls fn with the current
	// value and the zero value as previous value.
	ListenNotify(fn func(value, old T)) Connection

	// Connect registers slot to receive every new value.
	Connect(slot Slot[T]) Connection

	// ConnectNotify works like Connect and immediately delivers the current value.
	ConnectNotify(slot Slot[T]) Connection

	ConnectUnit(slot UnitSlot) Connection

	WithPriority(p int) ValuePrioritized[T]

	HasConnections() bool
}

type change[T any] struct {
	value T
	old   T
}

// observable is the change notification machinery shared by every value.
type observable[T any] struct {
	dispatcher *internal.Dispatcher[change[T]]

	get func() T
}

func newObservable[T any](get func() T, opts []Option) *observable[T] {
	return &observable[T]{
		dispatcher: internal.NewDispatcher[change[T]](newOptions(opts)),
		get:        get,
	}
}

func (o *observable[T]) Get() T {
	return o.get()
}

func (o *observable[T]) Listen(fn func(value, old T)) Connection {
	return o.WithPriority(DefaultPriority).Listen(fn)
}

func (o *observable[T]) ListenNotify(fn func(value, old T)) Connection {
	return o.WithPriority(DefaultPriority).ListenNotify(fn)
}

func (o *observable[T]) Connect(slot Slot[T]) Connection {
	return o.WithPriority(DefaultPriority).Connect(slot)
}

func (o *observable[T]) ConnectNotify(slot Slot[T]) Connection {
	return o.WithPriority(DefaultPriority).ConnectNotify(slot)
}

func (o *observable[T]) ConnectUnit(slot UnitSlot) Connection {
	return o.WithPriority(DefaultPriority).ConnectUnit(slot)
}

func (o *observable[T]) WithPriority(p int) ValuePrioritized[T] {
	return ValuePrioritized[T]{o: o, priority: p}
}

func (o *observable[T]) HasConnections() bool {
	return o.dispatcher.Len() > 0
}

func (o *observable[T]) notify(value, old T) {
	if err := o.dispatcher.Emit(change[T]{value, old}); err != nil {
		panic(err)
	}
}

// ValuePrioritized connects value listeners at a fixed priority.
type ValuePrioritized[T any] struct {
	o        *observable[T]
	priority int
}

func (p ValuePrioritized[T]) Listen(fn func(value, old T)) Connection {
	return p.o.dispatcher.Register(p.priority, func(c change[T]) {
		fn(c.value, c.old)
	})
}

func (p ValuePrioritized[T]) ListenNotify(fn func(value, old T)) Connection {
	conn := p.Listen(fn)

	var zero T
	fn(p.o.get(), zero)

	return conn
}

func (p ValuePrioritized[T]) Connect(slot Slot[T]) Connection {
	return p.o.dispatcher.Register(p.priority, func(c change[T]) {
		slot(c.value)
	})
}

func (p ValuePrioritized[T]) ConnectNotify(slot Slot[T]) Connection {
	conn := p.Connect(slot)
	slot(p.o.get())
	return conn
}

func (p ValuePrioritized[T]) ConnectUnit(slot UnitSlot) Connection {
	return p.o.dispatcher.Register(p.priority, unit[change[T]](slot))
}

// Value holds a value and notifies its listeners when it changes.
type Value[T comparable] struct {
	*observable[T]

	value T
}

// NewValue creates a value holding initial.
func NewValue[T comparable](initial T, opts ...Option) *Value[T] {
	v := &Value[T]{value: initial}
	v.observable = newObservable(func() T { return v.value }, opts)
	return v
}

// Update sets the value and notifies listeners if it differs from the current
// one. It returns the previous value.
func (v *Value[T]) Update(value T) T {
	if value == v.value {
		return value
	}
	return v.UpdateForce(value)
}

// UpdateForce sets the value and notifies listeners even if it didn't change.
// It returns the previous value.
func (v *Value[T]) UpdateForce(value T) T {
	old := v.value
	v.value = value
	v.notify(value, old)
	return old
}

// MappedValue is a value computed from other values.
type MappedValue[T any] struct {
	*observable[T]

	conn Connection
}

// Connection returns the connection that keeps m up to date. Disconnecting it
// stops m from notifying its listeners.
func (m *MappedValue[T]) Connection() Connection {
	return m.conn
}

// Map creates a value computed by applying fn to src. Listeners of the mapped
// value are notified every time src changes, even if the mapped result is
// the same.
func Map[T, M any](src ValueView[T], fn func(T) M, opts ...Option) *MappedValue[M] {
	m := &MappedValue[M]{
		observable: newObservable(func() M { return fn(src.Get()) }, opts),
	}

	m.conn = src.Listen(func(value, old T) {
		m.notify(fn(value), fn(old))
	})

	return m
}
