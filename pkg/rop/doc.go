// Package rop defines Result[S, F], a value that is exactly one of Success or
// Failure, and the primitive combinators over it.
//
// Highlights:
// - Success/Failure: construct a Result
// - FromOption/FromPredicate/FromBool/FromPair: derived constructors
// - Map/MapFailure/MapEither: transform one or both sides
// - Bind/BindFailure/BindEither: switch to another Result
// - Peek/PeekFailure/PeekEither: side effects without changing the result
// - OrError/OrElse/Recover: leave the two-track world
// - ToOption/ToSlice/ToSeq, AnyMatch/AllMatch, Count: projections
//
// Domain failures travel as data. Contract violations (reading the payload of
// the other variant, passing a nil function) panic with an error wrapping
// ErrNoValuePresent or ErrNilArgument at the call site, regardless of the
// variant of the receiver.
//
// Type-changing combinators are package functions because Go methods cannot
// declare type parameters; see package op for their point-free forms.
package rop
