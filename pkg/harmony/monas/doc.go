// Package monas provides Monas, the chain wrapper around one adapted value,
// and the chaining operators built on it.
//
// A Monas either borrows the caller's value (Of) or owns a private snapshot
// (Own, Right, Left). Both produce identical outputs; only a borrowed chain
// feeds its intermediate states back into the caller's variable:
//
//	opt := harmony.Some(10)
//	monas.Of(&opt).Map(func(n int) int { return n * 2 })
//	// opt now holds 20
//
// Same-type steps are methods:
// - Bind: feed the active value through a callback returning a Maybe
// - Map: replace the active value with a plain result
// - AndThen/OrElse: continue on the active or on the alternate state
// - Match/ValueOr/Exists/Unwrap: terminal operations
//
// Type-changing steps are the free functions Map, AndThen, OrElse, Match,
// MatchBoth and FlatMatch. Then, Pipe, Try, Await and Auto start a chain from
// a bare value.
//
// List-shaped values never short-circuit: every step applies to each
// element in order and the value stays a list. Map keeps the length; Bind
// and AndThen drop elements whose callback result is invalid, so they keep
// the length only for callbacks that never fail.
package monas
