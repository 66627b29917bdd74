// Package solo provides free-function accessors that work on any value,
// adapted or not: Unwrap, Validate, UnwrapAlt and Unit (rewrap), plus the
// shape predicates IsUnwrappable, IsMaybe, IsList and IsRewrappable.
//
// Values implementing the harmony contract are served through it; all other
// values are read with harmony.Probe.
package solo
