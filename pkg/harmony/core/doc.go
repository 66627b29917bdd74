// Package core contains worker plumbing: context-carried options, indexed
// channel helpers and the locomotive that drives a worker line. It holds no
// chaining logic; package mass builds its batch operations on it.
package core
