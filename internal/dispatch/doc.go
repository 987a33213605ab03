// Package dispatch looks bindings up at runtime.
//
// Bindings are chosen statically in Go code. Layout files and CLI flags name
// them with strings instead, so a Table maps (binding name, profile name) to a
// type-erased Entry that moves a domain value to and from a CSV cell.
package dispatch
