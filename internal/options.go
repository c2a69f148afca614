package internal

import "github.com/rs/zerolog"

type Options struct {
	Logger *zerolog.Logger

	// receives every listener failure instead of it being surfaced by Emit
	OnError func(error)

	// goroutine id the dispatcher is bound to, zero when unchecked
	Owner int64
}

type Option func(o *Options)

func NewOptions(opts ...Option) *Options {
	nop := zerolog.Nop()
	o := &Options{Logger: &nop}
	o.Apply(opts...)
	return o
}

func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}
