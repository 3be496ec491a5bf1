package op

import (
	"iter"

	"github.com/ib-77/twotrack/pkg/rop"
)

func Map[S, S2, F any](onSuccess func(S) S2) func(rop.Result[S, F]) rop.Result[S2, F] {
	rop.MustNotNil(onSuccess == nil, "onSuccess")
	return func(input rop.Result[S, F]) rop.Result[S2, F] {
		return rop.Map(input, onSuccess)
	}
}

func MapFailure[S, F, F2 any](onFailure func(F) F2) func(rop.Result[S, F]) rop.Result[S, F2] {
	rop.MustNotNil(onFailure == nil, "onFailure")
	return func(input rop.Result[S, F]) rop.Result[S, F2] {
		return rop.MapFailure(input, onFailure)
	}
}

func MapEither[S, S2, F, F2 any](
	onSuccess func(S) S2,
	onFailure func(F) F2) func(rop.Result[S, F]) rop.Result[S2, F2] {

	rop.MustNotNil(onSuccess == nil, "onSuccess")
	rop.MustNotNil(onFailure == nil, "onFailure")
	return func(input rop.Result[S, F]) rop.Result[S2, F2] {
		return rop.MapEither(input, onSuccess, onFailure)
	}
}

func Bind[S, S2, F any](onSuccess func(S) rop.Result[S2, F]) func(rop.Result[S, F]) rop.Result[S2, F] {
	rop.MustNotNil(onSuccess == nil, "onSuccess")
	return func(input rop.Result[S, F]) rop.Result[S2, F] {
		return rop.Bind(input, onSuccess)
	}
}

// FlatMap is an alias for Bind.
func FlatMap[S, S2, F any](onSuccess func(S) rop.Result[S2, F]) func(rop.Result[S, F]) rop.Result[S2, F] {
	return Bind(onSuccess)
}

func BindFailure[S, F, F2 any](onFailure func(F) rop.Result[S, F2]) func(rop.Result[S, F]) rop.Result[S, F2] {
	rop.MustNotNil(onFailure == nil, "onFailure")
	return func(input rop.Result[S, F]) rop.Result[S, F2] {
		return rop.BindFailure(input, onFailure)
	}
}

func BindEither[S, S2, F, F2 any](
	onSuccess func(S) rop.Result[S2, F2],
	onFailure func(F) rop.Result[S2, F2]) func(rop.Result[S, F]) rop.Result[S2, F2] {

	rop.MustNotNil(onSuccess == nil, "onSuccess")
	rop.MustNotNil(onFailure == nil, "onFailure")
	return func(input rop.Result[S, F]) rop.Result[S2, F2] {
		return rop.BindEither(input, onSuccess, onFailure)
	}
}

func Swap[S, F any]() func(rop.Result[S, F]) rop.Result[F, S] {
	return func(input rop.Result[S, F]) rop.Result[F, S] {
		return input.Swap()
	}
}

// Flip is an alias for Swap.
func Flip[S, F any]() func(rop.Result[S, F]) rop.Result[F, S] {
	return Swap[S, F]()
}

func Peek[S, F any](onSuccess func(S)) func(rop.Result[S, F]) rop.Result[S, F] {
	rop.MustNotNil(onSuccess == nil, "onSuccess")
	return func(input rop.Result[S, F]) rop.Result[S, F] {
		return input.Peek(onSuccess)
	}
}

// IfSuccess is an alias for Peek.
func IfSuccess[S, F any](onSuccess func(S)) func(rop.Result[S, F]) rop.Result[S, F] {
	return Peek[S, F](onSuccess)
}

func PeekFailure[S, F any](onFailure func(F)) func(rop.Result[S, F]) rop.Result[S, F] {
	rop.MustNotNil(onFailure == nil, "onFailure")
	return func(input rop.Result[S, F]) rop.Result[S, F] {
		return input.PeekFailure(onFailure)
	}
}

// IfFailure is an alias for PeekFailure.
func IfFailure[S, F any](onFailure func(F)) func(rop.Result[S, F]) rop.Result[S, F] {
	return PeekFailure[S, F](onFailure)
}

func PeekEither[S, F any](onSuccess func(S), onFailure func(F)) func(rop.Result[S, F]) rop.Result[S, F] {
	rop.MustNotNil(onSuccess == nil, "onSuccess")
	rop.MustNotNil(onFailure == nil, "onFailure")
	return func(input rop.Result[S, F]) rop.Result[S, F] {
		return input.PeekEither(onSuccess, onFailure)
	}
}

// OrError is terminal: use it last, outside of Pipe.
func OrError[S, F any]() func(rop.Result[S, F]) (S, error) {
	return func(input rop.Result[S, F]) (S, error) {
		return input.OrError()
	}
}

func OrErrorWith[S, F any](build func(F) error) func(rop.Result[S, F]) (S, error) {
	rop.MustNotNil(build == nil, "build")
	return func(input rop.Result[S, F]) (S, error) {
		return input.OrErrorWith(build)
	}
}

func OrElse[S, F any](fromFailure func(F) S) func(rop.Result[S, F]) S {
	rop.MustNotNil(fromFailure == nil, "fromFailure")
	return func(input rop.Result[S, F]) S {
		return input.OrElse(fromFailure)
	}
}

func DefaultsTo[S, F any](defaultValue S) func(rop.Result[S, F]) S {
	return func(input rop.Result[S, F]) S {
		return input.OrDefault(defaultValue)
	}
}

func DefaultsToFunc[S, F any](supply func() S) func(rop.Result[S, F]) S {
	rop.MustNotNil(supply == nil, "supply")
	return func(input rop.Result[S, F]) S {
		return input.OrDefaultFunc(supply)
	}
}

func Recover[S, F any](fromFailure func(F) S) func(rop.Result[S, F]) rop.Result[S, rop.Unit] {
	rop.MustNotNil(fromFailure == nil, "fromFailure")
	return func(input rop.Result[S, F]) rop.Result[S, rop.Unit] {
		return input.Recover(fromFailure)
	}
}

func ToOption[S, F any]() func(rop.Result[S, F]) rop.Option[S] {
	return rop.Result[S, F].ToOption
}

func ToSlice[S, F any]() func(rop.Result[S, F]) []S {
	return rop.Result[S, F].ToSlice
}

func ToSeq[S, F any]() func(rop.Result[S, F]) iter.Seq[S] {
	return rop.Result[S, F].ToSeq
}

func AnyMatch[S, F any](predicate func(S) bool) func(rop.Result[S, F]) bool {
	rop.MustNotNil(predicate == nil, "predicate")
	return func(input rop.Result[S, F]) bool {
		return input.AnyMatch(predicate)
	}
}

func AllMatch[S, F any](predicate func(S) bool) func(rop.Result[S, F]) bool {
	rop.MustNotNil(predicate == nil, "predicate")
	return func(input rop.Result[S, F]) bool {
		return input.AllMatch(predicate)
	}
}

func Count[S, F any]() func(rop.Result[S, F]) int {
	return rop.Result[S, F].Count
}

func IsSuccess[S, F any]() func(rop.Result[S, F]) bool {
	return rop.Result[S, F].IsSuccess
}

func IsFailure[S, F any]() func(rop.Result[S, F]) bool {
	return rop.Result[S, F].IsFailure
}

func Fold[S, F, R any](onSuccess func(S) R, onFailure func(F) R) func(rop.Result[S, F]) R {
	rop.MustNotNil(onSuccess == nil, "onSuccess")
	rop.MustNotNil(onFailure == nil, "onFailure")
	return func(input rop.Result[S, F]) R {
		return rop.Fold(input, onSuccess, onFailure)
	}
}
