package harmony

// Option is a value which may be absent. Its alternate payload is Unit.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf converts the comma-ok idiom into an Option.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Validate() bool {
	return o.ok
}

func (o Option[T]) Unwrap() T {
	if !o.ok {
		violation("Unwrap", o, ErrInvalid)
	}
	return o.value
}

func (o Option[T]) UnwrapAlt() Unit {
	if o.ok {
		violation("UnwrapAlt", o, ErrValid)
	}
	return Unit{}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o *Option[T]) Rewrap(v T) {
	o.value, o.ok = v, true
}

func (o *Option[T]) RewrapAlt(Unit) {
	o.Reset()
}

// Reset makes o empty.
func (o *Option[T]) Reset() {
	var zero T
	o.value, o.ok = zero, false
}

var _ Slot[Unit, int] = (*Option[int])(nil)
