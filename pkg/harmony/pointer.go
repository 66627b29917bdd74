package harmony

// Ptr adapts a Go pointer. A nil pointer is the empty state. Rewrap stores
// through the pointer, so the pointee observes every rewrap; a nil Ptr
// allocates a fresh pointee first.
type Ptr[T any] struct {
	p *T
}

func Pointer[T any](p *T) *Ptr[T] {
	return &Ptr[T]{p: p}
}

// Addr returns the adapted pointer.
func (p *Ptr[T]) Addr() *T {
	return p.p
}

func (p *Ptr[T]) Validate() bool {
	return p.p != nil
}

func (p *Ptr[T]) Unwrap() T {
	if p.p == nil {
		violation("Unwrap", p, ErrInvalid)
	}
	return *p.p
}

func (p *Ptr[T]) UnwrapAlt() Unit {
	if p.p != nil {
		violation("UnwrapAlt", p, ErrValid)
	}
	return Unit{}
}

func (p *Ptr[T]) Rewrap(v T) {
	if p.p == nil {
		p.p = new(T)
	}
	*p.p = v
}

// RewrapAlt drops the pointer; the former pointee is left unchanged.
func (p *Ptr[T]) RewrapAlt(Unit) {
	p.p = nil
}

var _ Slot[Unit, int] = (*Ptr[int])(nil)
