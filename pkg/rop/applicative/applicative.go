package applicative

import (
	"iter"
	"slices"

	"github.com/ib-77/twotrack/pkg/rop"
)

// accumulator is the running state of the fold. Once failed is set, successes
// are no longer collected.
type accumulator[S, F any] struct {
	successes []S
	failures  []F
	failed    bool
}

func (acc *accumulator[S, F]) add(elem rop.Result[S, F]) {
	if v, ok := elem.Get(); ok {
		if !acc.failed {
			acc.successes = append(acc.successes, v)
		}
		return
	}

	if !acc.failed {
		acc.failed = true
		acc.successes = nil
	}
	acc.failures = append(acc.failures, elem.Failure())
}

func (acc *accumulator[S, F]) result() rop.Result[[]S, []F] {
	if acc.failed {
		return rop.Failure[[]S, []F](acc.failures)
	}
	if acc.successes == nil {
		return rop.Success[[]S, []F]([]S{})
	}
	return rop.Success[[]S, []F](acc.successes)
}

func fold[S, F any](seq iter.Seq[rop.Result[S, F]]) rop.Result[[]S, []F] {
	acc := &accumulator[S, F]{}
	for elem := range seq {
		acc.add(elem)
	}
	return acc.result()
}

func mapped[V, S, F any](seq iter.Seq[V], mapping func(V) rop.Result[S, F]) iter.Seq[rop.Result[S, F]] {
	return func(yield func(rop.Result[S, F]) bool) {
		for v := range seq {
			if !yield(mapping(v)) {
				return
			}
		}
	}
}

// SequenceSlice folds the results into one, collecting every failure in input order.
func SequenceSlice[S, F any](results []rop.Result[S, F]) rop.Result[[]S, []F] {
	return fold(slices.Values(results))
}

// TraverseSlice maps each value to a Result, then behaves like SequenceSlice.
func TraverseSlice[V, S, F any](values []V, mapping func(V) rop.Result[S, F]) rop.Result[[]S, []F] {
	rop.MustNotNil(mapping == nil, "mapping")
	return fold(mapped(slices.Values(values), mapping))
}

// SequenceSeq pulls the results one at a time. Every element is evaluated, since
// each failure has to be reported.
func SequenceSeq[S, F any](results iter.Seq[rop.Result[S, F]]) rop.Result[iter.Seq[S], iter.Seq[F]] {
	rop.MustNotNil(results == nil, "results")
	return toSeqs(fold(results))
}

func TraverseSeq[V, S, F any](values iter.Seq[V], mapping func(V) rop.Result[S, F]) rop.Result[iter.Seq[S], iter.Seq[F]] {
	rop.MustNotNil(values == nil, "values")
	rop.MustNotNil(mapping == nil, "mapping")
	return toSeqs(fold(mapped(values, mapping)))
}

func toSeqs[S, F any](r rop.Result[[]S, []F]) rop.Result[iter.Seq[S], iter.Seq[F]] {
	return rop.MapEither(r,
		func(s []S) iter.Seq[S] { return slices.Values(s) },
		func(f []F) iter.Seq[F] { return slices.Values(f) })
}

// SequenceOption turns an optional Result into a Result of options. An absent
// slot is a Success(None).
func SequenceOption[S, F any](option rop.Option[rop.Result[S, F]]) rop.Result[rop.Option[S], rop.Option[F]] {
	r, ok := option.Get()
	if !ok {
		return rop.Success[rop.Option[S], rop.Option[F]](rop.None[S]())
	}
	return rop.MapEither(r, rop.Some[S], rop.Some[F])
}

func TraverseOption[V, S, F any](option rop.Option[V], mapping func(V) rop.Result[S, F]) rop.Result[rop.Option[S], rop.Option[F]] {
	rop.MustNotNil(mapping == nil, "mapping")
	v, ok := option.Get()
	if !ok {
		return rop.Success[rop.Option[S], rop.Option[F]](rop.None[S]())
	}
	return SequenceOption(rop.Some(mapping(v)))
}
