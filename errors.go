package react

import "github.com/AnatoleLucet/react/internal"

// ListenerPanic describes a listener that panicked during an emission. When
// the listener panicked with an error, errors.Is and errors.As see through it.
type ListenerPanic = internal.ListenerPanic

// EmitError gathers the failures of one emission, in dispatch order.
type EmitError = internal.EmitError

// ErrForeignGoroutine is the panic value raised by signals created
// WithOwnerCheck when used from another goroutine.
var ErrForeignGoroutine = internal.ErrForeignGoroutine
