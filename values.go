package react

import "github.com/AnatoleLucet/react/internal"

// UnitConnector is anything value-ignoring listeners can be connected to.
type UnitConnector interface {
	ConnectUnit(slot UnitSlot) Connection
}

// Toggler returns a boolean value flipped every time src fires.
func Toggler(src UnitConnector, initial bool, opts ...Option) *Value[bool] {
	v := NewValue(initial, opts...)
	src.ConnectUnit(func() {
		v.Update(!v.Get())
	})
	return v
}

// Not returns the logical negation of value.
func Not(value ValueView[bool], opts ...Option) *MappedValue[bool] {
	return Map(value, func(b bool) bool { return !b }, opts...)
}

// And returns a value that is true when all of values are true.
func And(values ...ValueView[bool]) *MappedValue[bool] {
	return aggregate(values, func(values []ValueView[bool]) bool {
		for _, v := range values {
			if !v.Get() {
				return false
			}
		}
		return true
	})
}

// Or returns a value that is true when any of values is true.
func Or(values ...ValueView[bool]) *MappedValue[bool] {
	return aggregate(values, func(values []ValueView[bool]) bool {
		for _, v := range values {
			if v.Get() {
				return true
			}
		}
		return false
	})
}

// aggregate notifies only when the result of op flips.
func aggregate(values []ValueView[bool], op func([]ValueView[bool]) bool) *MappedValue[bool] {
	m := &MappedValue[bool]{
		observable: newObservable(func() bool { return op(values) }, nil),
	}

	current := op(values)
	trigger := func() {
		old := current
		current = op(values)
		if current != old {
			m.notify(current, old)
		}
	}

	conns := make([]Connection, 0, len(values))
	for _, v := range values {
		conns = append(conns, v.ConnectUnit(trigger))
	}
	m.conn = internal.Join(conns...)

	return m
}
