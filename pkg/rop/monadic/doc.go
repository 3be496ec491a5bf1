// Package monadic folds a collection of rop.Result values into a single Result,
// stopping at the first failure.
//
// Successes are collected in order; the first failure becomes the result and no
// further element is pulled, so iter.Seq inputs that are expensive or unbounded
// are only evaluated up to that point. The failure type is F itself.
package monadic
