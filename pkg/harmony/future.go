package harmony

import (
	"context"
	"sync/atomic"
)

// Future is the outcome of a computation running in its own goroutine.
// Extracting the outcome blocks until the computation finishes and consumes
// the Future: a second extraction is a contract violation.
type Future[T any] struct {
	done     chan struct{}
	outcome  Sachet[error, T]
	consumed atomic.Bool
}

// Async starts f in a new goroutine. Errors returned by f and panics raised
// in it both end up in the alternate state of the outcome.
func Async[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(fut.done)
		fut.outcome = TryCatch(func() (T, error) {
			return f(ctx)
		})
		tracer().Debugf("future %p settled, success=%v", fut, fut.outcome.IsRight())
	}()

	return fut
}

// Resolved returns a settled Future holding v.
func Resolved[T any](v T) *Future[T] {
	fut := &Future[T]{done: make(chan struct{}), outcome: Right[error](v)}
	close(fut.done)
	return fut
}

// Rejected returns a settled Future holding err.
func Rejected[T any](err error) *Future[T] {
	fut := &Future[T]{done: make(chan struct{}), outcome: Left[error, T](err)}
	close(fut.done)
	return fut
}

// Done is closed once the computation has finished. Waiting on it does not
// consume the Future.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Unwrap blocks until the computation has finished and returns its outcome.
func (f *Future[T]) Unwrap() Sachet[error, T] {
	if !f.consumed.CompareAndSwap(false, true) {
		violation("Unwrap", f, ErrConsumed)
	}
	<-f.done
	return f.outcome
}

// Wait is Unwrap in Go's (value, error) form.
func (f *Future[T]) Wait() (T, error) {
	out := f.Unwrap()
	if v, ok := out.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, out.UnwrapAlt()
}

var _ Unwrappable[Sachet[error, int]] = (*Future[int])(nil)
