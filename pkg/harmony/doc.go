// Package harmony defines the contract a value has to satisfy to take part
// in monadic chaining, together with a set of ready-made adapted types.
//
// Adapted types never share a base type. Instead each one implements a small
// set of interfaces:
// - Unwrappable: a value can be read out
// - Maybe: the value may be absent (Validate)
// - Either: the absent state carries an alternate payload (UnwrapAlt)
// - Slot: the active or alternate value can be reassigned (Rewrap/RewrapAlt)
// - Sequence: the value is list-shaped and chained element-wise
//
// Provided adapters: Sachet (two-state container), Option, Ptr, Identity,
// Result (value or error), List, Abekobe (inverted view) and Future.
//
// Values of unknown types can be inspected with Probe and turned into a
// chainable Slot with Adapt. TryCatch converts errors and panics into the
// alternate state of a Sachet.
//
// Chaining itself lives in package monas; free-function accessors in
// package solo.
package harmony
