package solo

import (
	"fmt"
	"reflect"

	"github.com/ib-77/harmony/pkg/harmony"
)

type validator interface {
	Validate() bool
}

// TryUnwrap extracts the active value of v.
func TryUnwrap[T any](v any) (T, error) {
	if m, ok := v.(harmony.Maybe[T]); ok {
		if !m.Validate() {
			var zero T
			return zero, fmt.Errorf("%w: unwrap %T", harmony.ErrInvalid, v)
		}
		return m.Unwrap(), nil
	}
	if u, ok := v.(harmony.Unwrappable[T]); ok {
		return u.Unwrap(), nil
	}
	return harmony.ExtractAs[T](v)
}

// Unwrap is TryUnwrap panicking with a *harmony.ContractError on failure.
func Unwrap[T any](v any) T {
	t, err := TryUnwrap[T](v)
	if err != nil {
		panic(&harmony.ContractError{Op: "Unwrap", Type: fmt.Sprintf("%T", v), Err: err})
	}
	return t
}

// Validate reports whether a value can be extracted from v. Values no
// strategy applies to are never valid.
func Validate(v any) bool {
	if m, ok := v.(validator); ok {
		return m.Validate()
	}
	ok, err := harmony.Valid(v)
	return err == nil && ok
}

// UnwrapAlt returns the alternate payload of an Either-shaped v. It panics
// with a *harmony.ContractError if v is valid or has no alternate payload.
func UnwrapAlt[L any](v any) L {
	e, ok := v.(interface {
		validator
		UnwrapAlt() L
	})
	if !ok {
		panic(&harmony.ContractError{Op: "UnwrapAlt", Type: fmt.Sprintf("%T", v), Err: harmony.ErrUnsupported})
	}
	if e.Validate() {
		panic(&harmony.ContractError{Op: "UnwrapAlt", Type: fmt.Sprintf("%T", v), Err: harmony.ErrValid})
	}
	return e.UnwrapAlt()
}

// Unit reassigns the active value of v. Rewrappable values are rewrapped,
// non-nil pointers are stored through. If x has another type than the one v
// holds, x is converted first, both for a Rewrap method and for a pointer.
func Unit[T any](v any, x T) error {
	if r, ok := v.(harmony.Rewrappable[T]); ok {
		r.Rewrap(x)
		return nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return fmt.Errorf("%w: unit on %T", harmony.ErrUnsupported, v)
	}
	xv := reflect.ValueOf(&x).Elem()

	if m, ok := rewrapMethod(rv); ok {
		et := m.Type().In(0)
		if !xv.Type().ConvertibleTo(et) {
			return fmt.Errorf("%w: cannot rewrap %T with %T", harmony.ErrUnsupported, v, x)
		}
		m.Call([]reflect.Value{xv.Convert(et)})
		return nil
	}

	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("%w: unit on %T", harmony.ErrUnsupported, v)
	}
	if rv.IsNil() {
		return fmt.Errorf("%w: unit on nil %T", harmony.ErrInvalid, v)
	}
	et := rv.Type().Elem()
	if !xv.Type().ConvertibleTo(et) {
		return fmt.Errorf("%w: cannot store %T in %T", harmony.ErrUnsupported, x, v)
	}
	rv.Elem().Set(xv.Convert(et))
	return nil
}

// rewrapMethod returns the one-argument, no-result Rewrap method of rv.
func rewrapMethod(rv reflect.Value) (reflect.Value, bool) {
	m := rv.MethodByName("Rewrap")
	if !m.IsValid() || m.Type().NumIn() != 1 || m.Type().NumOut() != 0 {
		return reflect.Value{}, false
	}
	return m, true
}

// IsUnwrappable reports whether exactly one extraction strategy applies to v.
func IsUnwrappable(v any) bool {
	if _, ok := v.(validator); ok {
		return true
	}
	return harmony.CanExtract(v)
}

// IsMaybe reports whether v has an empty state.
func IsMaybe(v any) bool {
	if _, ok := v.(validator); ok {
		return true
	}
	c, err := harmony.Probe(v)
	return err == nil && c.EmptinessCheck
}

// IsList reports whether v is list-shaped: a slice, an array or a value with
// an Elements method.
func IsList(v any) bool {
	if v == nil {
		return false
	}
	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Slice || rt.Kind() == reflect.Array {
		return true
	}
	_, ok := rt.MethodByName("Elements")
	return ok
}

// IsRewrappable reports whether Unit[T] can store a T in v.
func IsRewrappable[T any](v any) bool {
	if _, ok := v.(harmony.Rewrappable[T]); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	if m, ok := rewrapMethod(rv); ok {
		return reflect.TypeFor[T]().ConvertibleTo(m.Type().In(0))
	}
	if rv.Kind() != reflect.Pointer {
		return false
	}
	return reflect.TypeFor[T]().ConvertibleTo(rv.Type().Elem())
}
