package harmony

import (
	"reflect"
)

// Adapt turns v into a chainable Slot. Slots are returned as they are;
// pointers and slice pointers are borrowed, so chaining over the result
// feeds back into the caller's variable. Slices, read-only Maybe and
// Unwrappable values are snapshotted. Every value that is not a Slot, a
// pointer or a slice must pass Probe first, so a type matching several
// extraction strategies is rejected with ErrAmbiguous even if it implements
// Maybe. Types with an emptiness check become an Option, all others an
// Identity.
func Adapt[T any](v any) (Slot[Unit, T], error) {
	switch x := v.(type) {
	case Slot[Unit, T]:
		return x, nil
	case *T:
		return Pointer(x), nil
	case *[]T:
		return BorrowList(x), nil
	case []T:
		return NewList(x...), nil
	}

	c, err := Probe(v)
	if err != nil {
		return nil, err
	}

	switch x := v.(type) {
	case Maybe[T]:
		o := None[T]()
		if x.Validate() {
			o = Some(x.Unwrap())
		}
		return &o, nil
	case Unwrappable[T]:
		return Plain(x.Unwrap()), nil
	}

	if !valid(reflect.ValueOf(v), c) {
		return &Option[T]{}, nil
	}
	t, err := ExtractAs[T](v)
	if err != nil {
		return nil, err
	}
	if c.EmptinessCheck {
		o := Some(t)
		return &o, nil
	}
	return Plain(t), nil
}
