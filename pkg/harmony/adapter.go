package harmony

// Unit is the alternate payload of maybe-shaped values: the empty state
// carries no information.
type Unit struct{}

// Unwrappable is anything a value can be read out of.
type Unwrappable[T any] interface {
	// Unwrap returns the active value. It panics with a *ContractError if
	// there is none.
	Unwrap() T
}

// Maybe is an Unwrappable which may be empty.
type Maybe[T any] interface {
	Unwrappable[T]
	// Validate reports whether Unwrap may be called
	Validate() bool
}

// Either is a Maybe whose empty state carries an alternate payload.
type Either[L, R any] interface {
	Maybe[R]
	// UnwrapAlt returns the alternate value. It panics with a *ContractError
	// if the value is valid.
	UnwrapAlt() L
}

// Rewrappable values can have their active value reassigned.
type Rewrappable[T any] interface {
	Rewrap(T)
}

// Slot is the full contract a value must satisfy to be chained: it can be
// read in either state and moved into either state.
type Slot[L, R any] interface {
	Either[L, R]
	Rewrap(R)
	RewrapAlt(L)
}

// Sequence marks list-shaped values. Binding over a sequence applies the
// callback to every element instead of short-circuiting.
type Sequence[T any] interface {
	Elements() []T
	Assign([]T)
}

// Variant is a two-state tagged value addressed by index, with index 1
// being the active alternative.
type Variant interface {
	Index() int
	Alternative(i int) any
}

// AltOf returns the alternate payload carried by m, if any. Maybe values that
// are not Either-shaped yield the zero value of L.
func AltOf[L, R any](m Maybe[R]) L {
	if e, ok := m.(Either[L, R]); ok {
		return e.UnwrapAlt()
	}
	var zero L
	return zero
}
