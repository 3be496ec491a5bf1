package monadic

import (
	"iter"
	"slices"

	"github.com/ib-77/twotrack/pkg/rop"
)

// fold stops pulling from seq at the first failure.
func fold[S, F any](seq iter.Seq[rop.Result[S, F]]) rop.Result[[]S, F] {
	successes := []S{}
	for elem := range seq {
		if elem.IsFailure() {
			return rop.Failure[[]S, F](elem.Failure())
		}
		successes = append(successes, elem.Value())
	}
	return rop.Success[[]S, F](successes)
}

// mapped is kept apart from the applicative copy so traversals import only rop.
func mapped[V, S, F any](seq iter.Seq[V], mapping func(V) rop.Result[S, F]) iter.Seq[rop.Result[S, F]] {
	return func(yield func(rop.Result[S, F]) bool) {
		for v := range seq {
			if !yield(mapping(v)) {
				return
			}
		}
	}
}

// SequenceSlice returns Success(all values) or the first failure.
func SequenceSlice[S, F any](results []rop.Result[S, F]) rop.Result[[]S, F] {
	return fold(slices.Values(results))
}

// TraverseSlice maps values left to right and stops at the first failure;
// later values are not passed to mapping.
func TraverseSlice[V, S, F any](values []V, mapping func(V) rop.Result[S, F]) rop.Result[[]S, F] {
	rop.MustNotNil(mapping == nil, "mapping")
	return fold(mapped(slices.Values(values), mapping))
}

// SequenceSeq pulls results until the first failure. Elements after it are
// never produced.
func SequenceSeq[S, F any](results iter.Seq[rop.Result[S, F]]) rop.Result[iter.Seq[S], F] {
	rop.MustNotNil(results == nil, "results")
	return toSeq(fold(results))
}

func TraverseSeq[V, S, F any](values iter.Seq[V], mapping func(V) rop.Result[S, F]) rop.Result[iter.Seq[S], F] {
	rop.MustNotNil(values == nil, "values")
	rop.MustNotNil(mapping == nil, "mapping")
	return toSeq(fold(mapped(values, mapping)))
}

func toSeq[S, F any](r rop.Result[[]S, F]) rop.Result[iter.Seq[S], F] {
	return rop.Map(r, func(s []S) iter.Seq[S] { return slices.Values(s) })
}

// SequenceOption turns an optional Result into a Result of an option. An absent
// slot is a Success(None).
func SequenceOption[S, F any](option rop.Option[rop.Result[S, F]]) rop.Result[rop.Option[S], F] {
	r, ok := option.Get()
	if !ok {
		return rop.Success[rop.Option[S], F](rop.None[S]())
	}
	return rop.Map(r, rop.Some[S])
}

func TraverseOption[V, S, F any](option rop.Option[V], mapping func(V) rop.Result[S, F]) rop.Result[rop.Option[S], F] {
	rop.MustNotNil(mapping == nil, "mapping")
	v, ok := option.Get()
	if !ok {
		return rop.Success[rop.Option[S], F](rop.None[S]())
	}
	return SequenceOption(rop.Some(mapping(v)))
}
