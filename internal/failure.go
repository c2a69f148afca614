package internal

import (
	"fmt"
	"runtime/debug"
)

// ListenerPanic is a panic recovered from a single listener during emission.
type ListenerPanic struct {
	Value    any
	Priority int
	Stack    []byte
}

func (p *ListenerPanic) Error() string {
	return fmt.Sprintf("react: listener (priority %d) panicked: %v", p.Priority, p.Value)
}

// Unwrap exposes the panic value when the listener panicked with an error.
func (p *ListenerPanic) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// EmitError reports every listener that failed during one emission, in
// dispatch order.
type EmitError struct {
	failures []*ListenerPanic
}

func (e *EmitError) Error() string {
	if len(e.failures) == 1 {
		return e.failures[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", e.failures[0].Error(), len(e.failures)-1)
}

// First returns the earliest failure of the emission.
func (e *EmitError) First() *ListenerPanic { return e.failures[0] }

func (e *EmitError) Failures() []*ListenerPanic { return e.failures }

func (e *EmitError) Unwrap() []error {
	errs := make([]error, len(e.failures))
	for i, f := range e.failures {
		errs[i] = f
	}
	return errs
}

// invoke runs one listener, containing any panic it raises.
func invoke[T any](e *entry[T], v T) (failure *ListenerPanic) {
	defer func() {
		if r := recover(); r != nil {
			failure = &ListenerPanic{
				Value:    r,
				Priority: e.priority,
				Stack:    debug.Stack(),
			}
		}
	}()

	e.fn(v)
	return nil
}
