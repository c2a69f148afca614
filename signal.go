package react

import "github.com/AnatoleLucet/react/internal"

// Signal is a channel that emits values of type T to its listeners.
type Signal[T any] struct {
	connector[T]
}

// NewSignal creates a signal without listeners.
func NewSignal[T any](opts ...Option) *Signal[T] {
	return &Signal[T]{
		connector[T]{internal.NewDispatcher[T](newOptions(opts))},
	}
}

// Emit sends v to every connected listener.
//
// If listeners panicked, Emit panics with an *EmitError once all of them ran,
// unless the signal was created WithErrorHandler.
func (s *Signal[T]) Emit(v T) {
	if err := s.dispatcher.Emit(v); err != nil {
		panic(err)
	}
}

// TryEmit works like Emit but returns listener failures instead of panicking.
func (s *Signal[T]) TryEmit(v T) error {
	return s.dispatcher.Emit(v)
}

// Reactor returns the listen-only view of s. Both share the same listeners:
// disconnecting through one affects the other.
func (s *Signal[T]) Reactor() *Reactor[T] {
	return &Reactor[T]{s.connector}
}
