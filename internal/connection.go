package internal

import "weak"

// Connection is the handle of one registered listener.
type Connection interface {
	// Disconnect stops the listener from receiving further emissions. If an
	// emission is running and has not reached the listener yet, it is skipped.
	// Calling it more than once is a no-op.
	Disconnect()

	// Once makes the listener disconnect itself right before its next
	// invocation.
	Once() Connection

	// Connected reports whether the listener still receives emissions.
	Connected() bool
}

type connection[T any] struct {
	// the dispatcher is not kept alive by its connections
	dispatcher weak.Pointer[Dispatcher[T]]
	entry      *entry[T]
}

func (c *connection[T]) Disconnect() {
	if !c.entry.active {
		return
	}

	d := c.dispatcher.Value()
	if d == nil {
		c.entry.active = false
		return
	}

	d.disconnect(c.entry)
}

func (c *connection[T]) Once() Connection {
	c.entry.once = true
	return c
}

func (c *connection[T]) Connected() bool {
	return c.entry.active
}

type multiConnection []Connection

// Join returns a connection that controls all of conns at once.
func Join(conns ...Connection) Connection {
	return multiConnection(conns)
}

func (m multiConnection) Disconnect() {
	for _, c := range m {
		c.Disconnect()
	}
}

func (m multiConnection) Once() Connection {
	for _, c := range m {
		c.Once()
	}
	return m
}

func (m multiConnection) Connected() bool {
	for _, c := range m {
		if c.Connected() {
			return true
		}
	}
	return false
}
