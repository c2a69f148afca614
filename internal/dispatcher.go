package internal

import "weak"

// Dispatcher owns the priority-ordered listeners of one channel. It is not
// safe for concurrent use: registration, emission and disconnection must all
// happen on the same goroutine.
type Dispatcher[T any] struct {
	entries []*entry[T]
	seq     uint64

	// number of emissions currently running (nested emissions included)
	depth int

	// entries has been reallocated since the innermost emission took its snapshot
	owned bool

	// some entries were tombstoned while an emission was running
	dirty bool

	opts *Options
}

func NewDispatcher[T any](opts *Options) *Dispatcher[T] {
	if opts == nil {
		opts = NewOptions()
	}

	return &Dispatcher[T]{opts: opts}
}

// Register adds fn after every listener of greater or equal priority.
func (d *Dispatcher[T]) Register(priority int, fn func(T)) Connection {
	d.opts.checkOwner()

	d.seq++
	e := &entry[T]{
		priority: priority,
		seq:      d.seq,
		fn:       fn,
		active:   true,
	}

	shared := d.depth > 0 && !d.owned
	d.entries = insert(d.entries, e, shared)
	if shared {
		d.owned = true
	}

	return &connection[T]{
		dispatcher: weak.Make(d),
		entry:      e,
	}
}

// Emit calls every active listener with v, in priority order. The set of
// listeners is the one present when Emit was called: listeners registered by a
// callback only see the next emission, and listeners disconnected before being
// reached are skipped.
//
// A panicking listener doesn't stop the emission. Once every listener ran, the
// failures are passed to the configured error handler, or returned as an
// *EmitError when there is none.
func (d *Dispatcher[T]) Emit(v T) error {
	d.opts.checkOwner()

	snapshot := d.entries
	prevOwned := d.owned
	d.owned = false
	d.depth++

	var failures []*ListenerPanic
	for _, e := range snapshot {
		if !e.active {
			continue
		}
		if e.once {
			d.disconnect(e)
		}

		if failure := invoke(e, v); failure != nil {
			d.opts.Logger.Error().
				Int("priority", failure.Priority).
				Interface("panic", failure.Value).
				Msg("listener panicked during emission")
			failures = append(failures, failure)
		}
	}

	d.depth--
	// an outer emission still iterates over its own snapshot, which is never
	// the array a nested registration reallocated into
	d.owned = prevOwned || d.owned
	if d.depth == 0 {
		d.owned = false
		if d.dirty {
			d.purge()
		}
	}

	if len(failures) == 0 {
		return nil
	}

	if d.opts.OnError != nil {
		for _, f := range failures {
			d.opts.OnError(f)
		}
		return nil
	}

	return &EmitError{failures: failures}
}

// Len returns the number of active listeners.
func (d *Dispatcher[T]) Len() int {
	n := 0
	for _, e := range d.entries {
		if e.active {
			n++
		}
	}
	return n
}

// Dispatching reports whether an emission is running.
func (d *Dispatcher[T]) Dispatching() bool {
	return d.depth > 0
}

func (d *Dispatcher[T]) disconnect(e *entry[T]) {
	d.opts.checkOwner()

	if !e.active {
		return
	}
	e.active = false

	if d.depth > 0 {
		d.dirty = true
		return
	}

	d.purge()
}

func (d *Dispatcher[T]) purge() {
	before := len(d.entries)
	d.entries = compact(d.entries)
	d.dirty = false

	d.opts.Logger.Trace().
		Int("removed", before-len(d.entries)).
		Int("remaining", len(d.entries)).
		Msg("purged disconnected listeners")
}
