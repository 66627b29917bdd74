package harmony

// Sachet is a minimal two-state container holding either a left (alternate)
// or a right (active) value. It gives an either shape to values that have
// none of their own.
type Sachet[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Sachet[L, R] {
	return Sachet[L, R]{left: l}
}

func Right[L, R any](r R) Sachet[L, R] {
	return Sachet[L, R]{right: r, isRight: true}
}

// SachetOf snapshots the current state of e.
func SachetOf[L, R any](e Either[L, R]) Sachet[L, R] {
	if e.Validate() {
		return Right[L](e.Unwrap())
	}
	return Left[L, R](e.UnwrapAlt())
}

func (s Sachet[L, R]) IsRight() bool {
	return s.isRight
}

func (s Sachet[L, R]) IsLeft() bool {
	return !s.isRight
}

func (s Sachet[L, R]) Validate() bool {
	return s.isRight
}

func (s Sachet[L, R]) Unwrap() R {
	if !s.isRight {
		violation("Unwrap", s, ErrInvalid)
	}
	return s.right
}

func (s Sachet[L, R]) UnwrapAlt() L {
	if s.isRight {
		violation("UnwrapAlt", s, ErrValid)
	}
	return s.left
}

// Get returns the right value and true, or the zero value and false.
func (s Sachet[L, R]) Get() (R, bool) {
	if !s.isRight {
		var zero R
		return zero, false
	}
	return s.right, true
}

// GetAlt returns the left value and true, or the zero value and false.
func (s Sachet[L, R]) GetAlt() (L, bool) {
	if s.isRight {
		var zero L
		return zero, false
	}
	return s.left, true
}

func (s *Sachet[L, R]) Rewrap(r R) {
	var zero L
	s.left, s.right, s.isRight = zero, r, true
}

func (s *Sachet[L, R]) RewrapAlt(l L) {
	var zero R
	s.left, s.right, s.isRight = l, zero, false
}

// Swap returns a copy with left and right exchanged.
func (s Sachet[L, R]) Swap() Sachet[R, L] {
	return Sachet[R, L]{left: s.right, right: s.left, isRight: !s.isRight}
}

var _ Slot[error, int] = (*Sachet[error, int])(nil)
