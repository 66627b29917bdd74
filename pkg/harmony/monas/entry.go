package monas

import (
	"github.com/ib-77/harmony/pkg/harmony"
)

// Then starts a borrowed chain on s with a first Bind step.
func Then[L, R any](s harmony.Slot[L, R], f func(R) harmony.Maybe[R]) Monas[L, R] {
	return Of(s).Bind(f)
}

// Pipe binds every function in fs in turn, starting a borrowed chain on s.
func Pipe[L, R any](s harmony.Slot[L, R], fs ...func(R) harmony.Maybe[R]) Monas[L, R] {
	m := Of(s)
	for _, f := range fs {
		m = m.Bind(f)
	}
	return m
}

// Try starts an owned chain from the outcome of f, see harmony.TryCatch.
func Try[R any](f func() (R, error)) Monas[error, R] {
	s := harmony.TryCatch(f)
	return Monas[error, R]{slot: &s, owned: true}
}

// Await blocks on fut and starts an owned chain from its outcome. The
// future is consumed.
func Await[T any](fut *harmony.Future[T]) Monas[error, T] {
	s := fut.Unwrap()
	return Monas[error, T]{slot: &s, owned: true}
}

// Auto adapts v with harmony.Adapt and starts a chain on the result.
// Pointers are borrowed.
func Auto[R any](v any) (Monas[harmony.Unit, R], error) {
	s, err := harmony.Adapt[R](v)
	if err != nil {
		return Monas[harmony.Unit, R]{}, err
	}
	return Monas[harmony.Unit, R]{slot: s, owned: !borrows[R](v)}, nil
}

func borrows[R any](v any) bool {
	switch v.(type) {
	case harmony.Slot[harmony.Unit, R], *R, *[]R:
		return true
	}
	return false
}
