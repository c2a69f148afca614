package react

import (
	"github.com/AnatoleLucet/react/internal"
	"github.com/rs/zerolog"
)

// Option configures a Signal or a Value.
type Option func(o *internal.Options)

func newOptions(opts []Option) *internal.Options {
	o := internal.NewOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used to report listener failures.
// By default nothing is logged.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *internal.Options) {
		o.Logger = l
	}
}

// WithErrorHandler hands every listener failure to fn instead of surfacing it
// from Emit. fn is called after all listeners of the emission ran.
func WithErrorHandler(fn func(error)) Option {
	return func(o *internal.Options) {
		o.OnError = fn
	}
}

// WithOwnerCheck binds the signal to the goroutine creating it. Any later use
// from another goroutine panics with ErrForeignGoroutine.
func WithOwnerCheck() Option {
	return Option(internal.BindOwner())
}
