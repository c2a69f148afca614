// Package react provides typed emission channels with prioritized listeners.
//
// A Signal emits values to every listener connected to it, synchronously and
// in priority order (higher first, registration order within a priority). A
// Reactor is the listen-only view of a Signal, handed to code that must not
// emit. A Value holds a value and notifies its listeners when it changes.
//
//	clicked := react.NewSignal[bool]()
//
//	conn := clicked.WithPriority(10).Connect(func(down bool) {
//		fmt.Println("pressed:", down)
//	})
//	clicked.ConnectUnit(func() { fmt.Println("something happened") })
//
//	clicked.Emit(true)
//	conn.Disconnect()
//
// Listeners may connect, disconnect (themselves or others) and emit from
// within a callback. An emission dispatches to the listeners present when it
// started: newly connected listeners only see the next one, and listeners
// disconnected before being reached are skipped.
//
// Nothing in this package is safe for concurrent use. A signal and everything
// connected to it belong to a single goroutine; see WithOwnerCheck.
package react

import "github.com/AnatoleLucet/react/internal"

// DefaultPriority is the priority of listeners connected without WithPriority.
const DefaultPriority = 0

// Slot is a listener that receives the emitted value.
type Slot[T any] func(T)

// UnitSlot is a listener that ignores the emitted value.
type UnitSlot func()

// Connection is the handle returned when connecting a listener.
type Connection = internal.Connection

func unit[T any](fn UnitSlot) func(T) {
	return func(T) { fn() }
}
