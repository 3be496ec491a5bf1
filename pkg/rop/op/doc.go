// Package op lifts every rop combinator into a unary operator, so results can be
// threaded through point-free pipelines.
//
// Each operator takes the auxiliary arguments (mapper, consumer, predicate) and
// returns a func from rop.Result to rop.Result, or to a plain value for terminal
// operators such as OrElse, Count and ToSlice. Arguments are checked when the
// operator is built, not when it runs.
//
// Common usage:
// - Result.Then(op): chain operators that keep the result type
// - Pipe2..Pipe5: thread a result through operators that change it
// - Compose: build a new operator from two
//
//	total := op.Pipe3(rop.Success[string, string]("21"),
//		op.Bind[string, int, string](parse),
//		op.Map[int, int, string](double),
//		op.DefaultsTo[int, string](0))
package op
