package harmony

// Abekobe is an inverted view over a Slot: the alternate state of the
// underlying value reads as the active one and vice versa. It holds no
// storage of its own, so every rewrap lands in the underlying value.
type Abekobe[L, R any] struct {
	inner Slot[L, R]
}

func Invert[L, R any](s Slot[L, R]) Abekobe[L, R] {
	return Abekobe[L, R]{inner: s}
}

// Inner returns the viewed value.
func (a Abekobe[L, R]) Inner() Slot[L, R] {
	return a.inner
}

func (a Abekobe[L, R]) Validate() bool {
	return !a.inner.Validate()
}

func (a Abekobe[L, R]) Unwrap() L {
	if a.inner.Validate() {
		violation("Unwrap", a, ErrInvalid)
	}
	return a.inner.UnwrapAlt()
}

func (a Abekobe[L, R]) UnwrapAlt() R {
	if !a.inner.Validate() {
		violation("UnwrapAlt", a, ErrValid)
	}
	return a.inner.Unwrap()
}

func (a Abekobe[L, R]) Rewrap(l L) {
	a.inner.RewrapAlt(l)
}

func (a Abekobe[L, R]) RewrapAlt(r R) {
	a.inner.Rewrap(r)
}

var _ Slot[int, error] = Abekobe[error, int]{}
