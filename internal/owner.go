package internal

import (
	"errors"

	"github.com/petermattis/goid"
)

var ErrForeignGoroutine = errors.New("react: signal used outside of its owning goroutine")

// BindOwner ties the options to the calling goroutine.
func BindOwner() Option {
	return func(o *Options) {
		o.Owner = goid.Get()
	}
}

func (o *Options) checkOwner() {
	if o.Owner != 0 && o.Owner != goid.Get() {
		panic(ErrForeignGoroutine)
	}
}
