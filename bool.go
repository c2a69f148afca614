package react

type (
	BoolSlot    = Slot[bool]
	BoolSignal  = Signal[bool]
	BoolReactor = Reactor[bool]
)

// NewBoolSignal creates a signal of booleans.
func NewBoolSignal(opts ...Option) *BoolSignal {
	return NewSignal[bool](opts...)
}
