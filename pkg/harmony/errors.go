package harmony

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid     = errors.New("value is in the invalid state")
	ErrValid       = errors.New("value is in the valid state")
	ErrAmbiguous   = errors.New("more than one extraction strategy applies")
	ErrUnsupported = errors.New("no extraction strategy applies")
	ErrConsumed    = errors.New("value has already been consumed")
	ErrCancelled   = errors.New("operation cancelled")
)

// ContractError reports a call made against the state of an adapted value,
// e.g. Unwrap on an empty Option.
type ContractError struct {
	Op   string
	Type string
	Err  error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("harmony: %s on %s: %v", e.Op, e.Type, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// violation panics with a *ContractError for value v.
func violation(op string, v any, err error) {
	ce := &ContractError{Op: op, Type: fmt.Sprintf("%T", v), Err: err}
	tracer().Errorf(ce.Error())
	panic(ce)
}
