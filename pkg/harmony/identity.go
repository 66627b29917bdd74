package harmony

// Identity adapts a plain value. It is always valid, so a chain over it never
// short-circuits; moving it into the alternate state is a contract
// violation.
type Identity[T any] struct {
	v T
}

func Plain[T any](v T) *Identity[T] {
	return &Identity[T]{v: v}
}

func (i *Identity[T]) Validate() bool {
	return true
}

func (i *Identity[T]) Unwrap() T {
	return i.v
}

func (i *Identity[T]) UnwrapAlt() Unit {
	violation("UnwrapAlt", i, ErrValid)
	return Unit{}
}

func (i *Identity[T]) Rewrap(v T) {
	i.v = v
}

func (i *Identity[T]) RewrapAlt(Unit) {
	violation("RewrapAlt", i, ErrValid)
}

var _ Slot[Unit, int] = (*Identity[int])(nil)
