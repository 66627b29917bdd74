package monas

import (
	"github.com/ib-77/harmony/pkg/harmony"
)

// Monas holds exactly one adapted value and chains operations on it.
// A borrowed Monas must not outlive the value it was created from.
type Monas[L, R any] struct {
	slot  harmony.Slot[L, R]
	owned bool
}

// Of borrows s: every step rewraps s itself.
func Of[L, R any](s harmony.Slot[L, R]) Monas[L, R] {
	return Monas[L, R]{slot: s}
}

// Own snapshots e into storage private to the chain. List-shaped and plain
// values keep their shape.
func Own[L, R any](e harmony.Either[L, R]) Monas[L, R] {
	switch x := any(e).(type) {
	case harmony.Sequence[R]:
		return carryAlt(listOf[L](x.Elements()), e)
	case *harmony.Identity[R]:
		if s, ok := any(harmony.Plain(x.Unwrap())).(harmony.Slot[L, R]); ok {
			return Monas[L, R]{slot: s, owned: true}
		}
	}
	s := harmony.SachetOf(e)
	return Monas[L, R]{slot: &s, owned: true}
}

// Right starts an owned chain in the valid state.
func Right[L, R any](r R) Monas[L, R] {
	s := harmony.Right[L](r)
	return Monas[L, R]{slot: &s, owned: true}
}

// Left starts an owned chain in the alternate state.
func Left[L, R any](l L) Monas[L, R] {
	s := harmony.Left[L, R](l)
	return Monas[L, R]{slot: &s, owned: true}
}

// listOf builds an owned list chain over a copy of items. A harmony.List is
// used when L is harmony.Unit, a batch otherwise.
func listOf[L, R any](items []R) Monas[L, R] {
	if s, ok := any(harmony.NewList(items...)).(harmony.Slot[L, R]); ok {
		return Monas[L, R]{slot: s, owned: true}
	}
	return Monas[L, R]{slot: &batch[L, R]{items: append([]R(nil), items...)}, owned: true}
}

// carryAlt moves m into the alternate state of from if both are invalid.
func carryAlt[L, R, X any](m Monas[L, R], from harmony.Either[L, X]) Monas[L, R] {
	if !m.slot.Validate() && !from.Validate() {
		m.slot.RewrapAlt(from.UnwrapAlt())
	}
	return m
}

// adopt wraps a callback result. Slots are taken over as they are, other
// Either values are snapshotted.
func adopt[L, R any](e harmony.Either[L, R]) Monas[L, R] {
	if e == nil {
		var zero L
		return Left[L, R](zero)
	}
	if s, ok := e.(harmony.Slot[L, R]); ok {
		return Monas[L, R]{slot: s, owned: true}
	}
	return Own(e)
}

// Bind feeds the active value through f. A valid result is rewrapped, an
// invalid (or nil) one moves the chain into the alternate state, carrying
// the result's alternate payload if it has one. On the alternate state f is
// not called. Lists apply f to every element in order and keep only the
// valid results: order is always preserved, length only if f never returns
// an invalid value.
func (m Monas[L, R]) Bind(f func(R) harmony.Maybe[R]) Monas[L, R] {
	if seq, ok := m.slot.(harmony.Sequence[R]); ok {
		in := seq.Elements()
		out := make([]R, 0, len(in))
		for _, x := range in {
			if r := f(x); r != nil && r.Validate() {
				out = append(out, r.Unwrap())
			}
		}
		seq.Assign(out)
		return m
	}

	if !m.slot.Validate() {
		return m
	}
	r := f(m.slot.Unwrap())
	switch {
	case r == nil:
		var zero L
		m.slot.RewrapAlt(zero)
	case r.Validate():
		m.slot.Rewrap(r.Unwrap())
	default:
		tracer().Debugf("bind: %T entered the alternate state", m.slot)
		m.slot.RewrapAlt(harmony.AltOf[L](r))
	}
	return m
}

// Map replaces the active value with f's result. Lists map every element.
func (m Monas[L, R]) Map(f func(R) R) Monas[L, R] {
	if seq, ok := m.slot.(harmony.Sequence[R]); ok {
		in := seq.Elements()
		out := make([]R, len(in))
		for i, x := range in {
			out[i] = f(x)
		}
		seq.Assign(out)
		return m
	}

	if m.slot.Validate() {
		m.slot.Rewrap(f(m.slot.Unwrap()))
	}
	return m
}

// AndThen is Bind for callbacks returning an Either: the alternate payload
// of a failing step is propagated unchanged.
func (m Monas[L, R]) AndThen(f func(R) harmony.Either[L, R]) Monas[L, R] {
	return m.Bind(func(x R) harmony.Maybe[R] {
		return f(x)
	})
}

// OrElse feeds the alternate value through f; the valid state passes
// through and f is not called.
func (m Monas[L, R]) OrElse(f func(L) harmony.Either[L, R]) Monas[L, R] {
	if m.slot.Validate() {
		return m
	}
	r := f(m.slot.UnwrapAlt())
	switch {
	case r == nil:
		var zero L
		m.slot.RewrapAlt(zero)
	case r.Validate():
		m.slot.Rewrap(r.Unwrap())
	default:
		m.slot.RewrapAlt(r.UnwrapAlt())
	}
	return m
}

// Tap runs side effects for the current state without changing it. Either
// callback may be nil.
func (m Monas[L, R]) Tap(onRight func(R), onLeft func(L)) Monas[L, R] {
	if m.slot.Validate() {
		if onRight != nil {
			onRight(m.slot.Unwrap())
		}
	} else if onLeft != nil {
		onLeft(m.slot.UnwrapAlt())
	}
	return m
}

// Fresh returns an owned copy of the chain: further steps on the copy are
// no longer visible through the value m was created from.
func (m Monas[L, R]) Fresh() Monas[L, R] {
	return Own[L, R](m.slot)
}

// Invert returns a chain over the same storage with the two states swapped.
func (m Monas[L, R]) Invert() Monas[R, L] {
	return Monas[R, L]{slot: harmony.Invert(m.slot), owned: m.owned}
}

// Match ends the chain, calling exactly one of the callbacks.
func (m Monas[L, R]) Match(onRight func(R) R, onLeft func(L) R) R {
	return Match(m, onRight, onLeft)
}

// Exists reports whether the chain is valid and pred holds for the active
// value; for lists, whether pred holds for any element.
func (m Monas[L, R]) Exists(pred func(R) bool) bool {
	if seq, ok := m.slot.(harmony.Sequence[R]); ok {
		for _, x := range seq.Elements() {
			if pred(x) {
				return true
			}
		}
		return false
	}
	return m.slot.Validate() && pred(m.slot.Unwrap())
}

// ValueOr returns the active value, or def in the alternate state.
func (m Monas[L, R]) ValueOr(def R) R {
	if m.slot.Validate() {
		return m.slot.Unwrap()
	}
	return def
}

// Get returns the active value and true, or the zero value and false.
func (m Monas[L, R]) Get() (R, bool) {
	if m.slot.Validate() {
		return m.slot.Unwrap(), true
	}
	var zero R
	return zero, false
}

// Unwrap returns the active value. It panics with a *harmony.ContractError
// in the alternate state.
func (m Monas[L, R]) Unwrap() R {
	return m.slot.Unwrap()
}

// UnwrapAlt returns the alternate value. It panics with a
// *harmony.ContractError in the valid state.
func (m Monas[L, R]) UnwrapAlt() L {
	return m.slot.UnwrapAlt()
}

func (m Monas[L, R]) Valid() bool {
	return m.slot.Validate()
}

// Slot returns the adapted value the chain operates on.
func (m Monas[L, R]) Slot() harmony.Slot[L, R] {
	return m.slot
}

// Snapshot copies the current state into a Sachet.
func (m Monas[L, R]) Snapshot() harmony.Sachet[L, R] {
	return harmony.SachetOf[L, R](m.slot)
}

// Borrowed reports whether steps feed back into a caller-owned value.
func (m Monas[L, R]) Borrowed() bool {
	return !m.owned
}
