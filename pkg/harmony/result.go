package harmony

import (
	"errors"
	"time"
)

// Result adapts Go's (value, error) idiom: the alternate payload is the
// error. A cancelled result is a failed one whose error is a cancellation.
type Result[T any] struct {
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Ok[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
	}
}

// Fail fails with err; a nil err is replaced by ErrInvalid.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrInvalid
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
	}
}

// Cancel fails with err marked as a cancellation.
func Cancel[T any](err error) Result[T] {
	if !IsCancellationError(err) {
		err = errors.Join(ErrCancelled, err)
	}
	return Fail[T](err)
}

// From converts a (value, error) pair.
func From[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(r)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return !r.isSuccess && IsCancellationError(r.err)
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Validate() bool {
	return r.isSuccess
}

func (r Result[T]) Unwrap() T {
	if !r.isSuccess {
		violation("Unwrap", r, ErrInvalid)
	}
	return r.result
}

func (r Result[T]) UnwrapAlt() error {
	if r.isSuccess {
		violation("UnwrapAlt", r, ErrValid)
	}
	return r.err
}

func (r *Result[T]) Rewrap(v T) {
	*r = Ok(v)
}

func (r *Result[T]) RewrapAlt(err error) {
	*r = Fail[T](err)
}

var _ Slot[error, int] = (*Result[int])(nil)
