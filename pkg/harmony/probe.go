package harmony

import (
	"errors"
	"fmt"
	"reflect"
)

// Strategy names the way a value is read out of an arbitrary type.
// Strategies are listed in priority order.
type Strategy int

const (
	StrategyNone    Strategy = iota
	StrategyDeref            // Go pointer
	StrategyValue            // Value() X
	StrategyUnwrap           // Unwrap() X
	StrategyRange            // slice or array, front element
	StrategyVariant          // Variant, alternative 1
	StrategyFuture           // Get() (X, error)
)

func (s Strategy) String() string {
	switch s {
	case StrategyDeref:
		return "deref"
	case StrategyValue:
		return "value"
	case StrategyUnwrap:
		return "unwrap"
	case StrategyRange:
		return "range"
	case StrategyVariant:
		return "variant"
	case StrategyFuture:
		return "future"
	}
	return "none"
}

// Capability is the result of probing a type.
type Capability struct {
	Strategy       Strategy
	Deref          bool
	ValueAccessor  bool
	ErrorAccessor  bool
	EmptinessCheck bool
}

var (
	errorType   = reflect.TypeFor[error]()
	boolType    = reflect.TypeFor[bool]()
	variantType = reflect.TypeFor[Variant]()
)

var emptinessMethods = []string{"Validate", "HasValue", "IsValid"}

// Probe decides which strategy extracts a value from v. A Go pointer always
// dereferences, even if its type has accessor methods. For other types
// exactly one strategy must match: several matches yield ErrAmbiguous, none
// ErrUnsupported.
func Probe(v any) (Capability, error) {
	if v == nil {
		return Capability{}, fmt.Errorf("%w: nil", ErrUnsupported)
	}
	rt := reflect.TypeOf(v)

	c := Capability{
		ValueAccessor:  accessor(rt, "Value") || accessor(rt, "Unwrap"),
		ErrorAccessor:  method(rt, "Err", errorType) || accessor(rt, "UnwrapAlt"),
		EmptinessCheck: emptinessMethod(rt) != "",
	}

	if rt.Kind() == reflect.Pointer {
		c.Strategy, c.Deref, c.EmptinessCheck = StrategyDeref, true, true
		tracer().Debugf("probe %s: %s", rt, c.Strategy)
		return c, nil
	}

	var matched []Strategy
	if accessor(rt, "Value") {
		matched = append(matched, StrategyValue)
	}
	if accessor(rt, "Unwrap") {
		matched = append(matched, StrategyUnwrap)
	}
	if rt.Kind() == reflect.Slice || rt.Kind() == reflect.Array {
		matched = append(matched, StrategyRange)
		c.EmptinessCheck = true
	}
	if rt.Implements(variantType) {
		matched = append(matched, StrategyVariant)
		c.EmptinessCheck = true
	}
	if futureLike(rt) {
		matched = append(matched, StrategyFuture)
		c.ErrorAccessor = true
	}

	switch len(matched) {
	case 0:
		return c, fmt.Errorf("%w: %s", ErrUnsupported, rt)
	case 1:
		c.Strategy = matched[0]
	default:
		tracer().Errorf("probe %s: ambiguous %v", rt, matched)
		return c, fmt.Errorf("%w: %s matches %v", ErrAmbiguous, rt, matched)
	}
	tracer().Debugf("probe %s: %s", rt, c.Strategy)
	return c, nil
}

// CanExtract reports whether exactly one strategy applies to v.
func CanExtract(v any) bool {
	_, err := Probe(v)
	return err == nil
}

// Valid reports whether a value can currently be extracted from v. Types
// without an emptiness check are always valid.
func Valid(v any) (bool, error) {
	c, err := Probe(v)
	if err != nil {
		return false, err
	}
	return valid(reflect.ValueOf(v), c), nil
}

func valid(rv reflect.Value, c Capability) bool {
	switch c.Strategy {
	case StrategyDeref:
		return !rv.IsNil()
	case StrategyRange:
		return rv.Len() > 0
	case StrategyVariant:
		return rv.Interface().(Variant).Index() == 1
	}
	if name := emptinessMethod(rv.Type()); name != "" {
		return rv.MethodByName(name).Call(nil)[0].Bool()
	}
	return true
}

// Extract reads the active value out of v. It returns ErrInvalid if v is
// empty; futures report their own failure.
func Extract(v any) (out any, err error) {
	c, err := Probe(v)
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(v)
	if !valid(rv, c) {
		return nil, fmt.Errorf("%w: extract from %s", ErrInvalid, rv.Type())
	}

	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ContractError)
			if !ok {
				panic(r)
			}
			out, err = nil, ce
		}
	}()

	switch c.Strategy {
	case StrategyDeref:
		return rv.Elem().Interface(), nil
	case StrategyValue:
		return rv.MethodByName("Value").Call(nil)[0].Interface(), nil
	case StrategyUnwrap:
		return rv.MethodByName("Unwrap").Call(nil)[0].Interface(), nil
	case StrategyRange:
		return rv.Index(0).Interface(), nil
	case StrategyVariant:
		return v.(Variant).Alternative(1), nil
	case StrategyFuture:
		outs := rv.MethodByName("Get").Call(nil)
		if e, _ := outs[1].Interface().(error); e != nil {
			return nil, e
		}
		return outs[0].Interface(), nil
	}
	return nil, ErrUnsupported
}

// ExtractAs is Extract with the result converted to T.
func ExtractAs[T any](v any) (T, error) {
	var zero T
	x, err := Extract(v)
	if err != nil {
		return zero, err
	}
	t, ok := x.(T)
	if !ok {
		return zero, fmt.Errorf("%w: extracted %T, want %T", ErrUnsupported, x, zero)
	}
	return t, nil
}

// IsContractError reports whether err stems from a contract violation.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

func accessor(rt reflect.Type, name string) bool {
	m, ok := rt.MethodByName(name)
	return ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1
}

func method(rt reflect.Type, name string, out reflect.Type) bool {
	m, ok := rt.MethodByName(name)
	return ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && m.Type.Out(0) == out
}

func emptinessMethod(rt reflect.Type) string {
	for _, name := range emptinessMethods {
		if method(rt, name, boolType) {
			return name
		}
	}
	return ""
}

func futureLike(rt reflect.Type) bool {
	m, ok := rt.MethodByName("Get")
	return ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 2 && m.Type.Out(1) == errorType
}
