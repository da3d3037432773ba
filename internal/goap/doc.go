// Package goap implements the symbolic core of a Goal-Oriented Action
// Planner: a STRIPS-style search over boolean predicate states, given an
// initial state, a goal state, and a library of costed actions.
//
// The package is deliberately dependency-free beyond the standard library.
// It never touches a network, a database, or a file: those are the caller's
// problem (see the sibling library/store/cache packages for one such
// caller). A Plan call is synchronous, allocates no goroutines, and is safe
// to call concurrently from multiple goroutines provided the action slice
// passed in is not mutated while a call is in flight.
package goap
