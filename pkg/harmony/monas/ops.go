package monas

import (
	"github.com/ib-77/harmony/pkg/harmony"
)

// Map transforms the active value into a value of another type. The result
// lives in an owned Sachet; lists stay lists and map every element. The
// alternate payload is carried over unchanged.
func Map[L, R, U any](m Monas[L, R], f func(R) U) Monas[L, U] {
	if seq, ok := m.slot.(harmony.Sequence[R]); ok {
		in := seq.Elements()
		out := make([]U, len(in))
		for i, x := range in {
			out[i] = f(x)
		}
		return carryAlt(listOf[L](out), m.slot)
	}

	if !m.slot.Validate() {
		return Left[L, U](m.slot.UnwrapAlt())
	}
	return Right[L](f(m.slot.Unwrap()))
}

// AndThen continues with f on the active value; on the alternate state the
// payload is propagated and f is not called. Lists bind every element and
// keep the valid results, so the output is shorter than the input whenever
// f fails for an element.
func AndThen[L, R, U any](m Monas[L, R], f func(R) harmony.Either[L, U]) Monas[L, U] {
	if seq, ok := m.slot.(harmony.Sequence[R]); ok {
		in := seq.Elements()
		out := make([]U, 0, len(in))
		for _, x := range in {
			if r := f(x); r != nil && r.Validate() {
				out = append(out, r.Unwrap())
			}
		}
		return carryAlt(listOf[L](out), m.slot)
	}

	if !m.slot.Validate() {
		return Left[L, U](m.slot.UnwrapAlt())
	}
	return adopt(f(m.slot.Unwrap()))
}

// OrElse continues with f on the alternate value; the active value passes
// through and f is not called.
func OrElse[L, R, M any](m Monas[L, R], f func(L) harmony.Either[M, R]) Monas[M, R] {
	if m.slot.Validate() {
		if seq, ok := m.slot.(harmony.Sequence[R]); ok {
			return listOf[M](seq.Elements())
		}
		return Right[M](m.slot.Unwrap())
	}
	return adopt(f(m.slot.UnwrapAlt()))
}

// Match ends the chain, calling exactly one of the callbacks according to
// the current state.
func Match[L, R, U any](m Monas[L, R], onRight func(R) U, onLeft func(L) U) U {
	if m.slot.Validate() {
		return onRight(m.slot.Unwrap())
	}
	return onLeft(m.slot.UnwrapAlt())
}

// MatchBoth is Match with a single callback, for chains whose two states
// share one type.
func MatchBoth[T, U any](m Monas[T, T], f func(T) U) U {
	return Match(m, f, f)
}

// FlatMatch is Match for callbacks returning an Either: the common result is
// wrapped into a new chain instead of ending it.
func FlatMatch[L, R, M, U any](m Monas[L, R],
	onRight func(R) harmony.Either[M, U],
	onLeft func(L) harmony.Either[M, U]) Monas[M, U] {
	return adopt(Match(m, onRight, onLeft))
}
