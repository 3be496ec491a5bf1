// Package applicative folds a collection of rop.Result values into a single
// Result, evaluating every element and accumulating every failure.
//
// The fold runs left to right from Success(empty):
// - success after success: the value is appended
// - first failure: the accumulator becomes Failure([failure])
// - success after a failure: discarded
// - failure after a failure: appended
//
// The result is Success(all values) when every element succeeded, otherwise
// Failure(all failures) in input order. Traverse maps first, then sequences.
// Shapes: slices, iter.Seq (pulled one element at a time) and rop.Option.
//
// See package monadic for the short-circuiting counterpart.
package applicative
