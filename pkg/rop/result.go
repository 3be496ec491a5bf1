package rop

import (
	"fmt"
	"iter"
	"reflect"
)

// Unit is the failure type of a recovered Result.
type Unit = struct{}

// Result holds either a success value of type S or a failure value of type F.
// The zero value is a Failure holding the zero F.
type Result[S, F any] struct {
	value   S
	failure F
	success bool
}

func Success[S, F any](value S) Result[S, F] {
	return Result[S, F]{
		value:   value,
		success: true,
	}
}

func Failure[S, F any](failure F) Result[S, F] {
	return Result[S, F]{
		failure: failure,
		success: false,
	}
}

func (r Result[S, F]) IsSuccess() bool {
	return r.success
}

func (r Result[S, F]) IsFailure() bool {
	return !r.success
}

// Value returns the success value. It panics with ErrNoValuePresent on a Failure.
func (r Result[S, F]) Value() S {
	if !r.success {
		panic(noValuePresent("value of a failure"))
	}
	return r.value
}

// Failure returns the failure value. It panics with ErrNoValuePresent on a Success.
func (r Result[S, F]) Failure() F {
	if r.success {
		panic(noValuePresent("failure of a success"))
	}
	return r.failure
}

// Get returns the success value and whether it is present.
func (r Result[S, F]) Get() (S, bool) {
	return r.value, r.success
}

// GetFailure returns the failure value and whether it is present.
func (r Result[S, F]) GetFailure() (F, bool) {
	return r.failure, !r.success
}

// Swap turns a Success into a Failure and vice versa.
func (r Result[S, F]) Swap() Result[F, S] {
	if r.success {
		return Failure[F, S](r.value)
	}
	return Success[F, S](r.failure)
}

// Then passes the result to a step of the same type, for chaining operators.
func (r Result[S, F]) Then(step func(Result[S, F]) Result[S, F]) Result[S, F] {
	MustNotNil(step == nil, "step")
	return step(r)
}

func (r Result[S, F]) Peek(onSuccess func(S)) Result[S, F] {
	MustNotNil(onSuccess == nil, "onSuccess")
	if r.success {
		onSuccess(r.value)
	}
	return r
}

func (r Result[S, F]) PeekFailure(onFailure func(F)) Result[S, F] {
	MustNotNil(onFailure == nil, "onFailure")
	if !r.success {
		onFailure(r.failure)
	}
	return r
}

func (r Result[S, F]) PeekEither(onSuccess func(S), onFailure func(F)) Result[S, F] {
	MustNotNil(onSuccess == nil, "onSuccess")
	MustNotNil(onFailure == nil, "onFailure")
	if r.success {
		onSuccess(r.value)
	} else {
		onFailure(r.failure)
	}
	return r
}

// IfSuccess is an alias for Peek.
func (r Result[S, F]) IfSuccess(onSuccess func(S)) Result[S, F] {
	return r.Peek(onSuccess)
}

// IfFailure is an alias for PeekFailure.
func (r Result[S, F]) IfFailure(onFailure func(F)) Result[S, F] {
	return r.PeekFailure(onFailure)
}

// OrError leaves the Result: the success value, or an error wrapping ErrNoValuePresent.
func (r Result[S, F]) OrError() (S, error) {
	if r.success {
		return r.value, nil
	}
	return r.value, fmt.Errorf("%w: %v", ErrNoValuePresent, r.failure)
}

// OrErrorWith leaves the Result with an error built from the failure value.
func (r Result[S, F]) OrErrorWith(build func(F) error) (S, error) {
	MustNotNil(build == nil, "build")
	if r.success {
		return r.value, nil
	}
	return r.value, build(r.failure)
}

func (r Result[S, F]) OrElse(fromFailure func(F) S) S {
	MustNotNil(fromFailure == nil, "fromFailure")
	if r.success {
		return r.value
	}
	return fromFailure(r.failure)
}

func (r Result[S, F]) OrDefault(defaultValue S) S {
	if r.success {
		return r.value
	}
	return defaultValue
}

func (r Result[S, F]) OrDefaultFunc(supply func() S) S {
	MustNotNil(supply == nil, "supply")
	if r.success {
		return r.value
	}
	return supply()
}

// Recover turns any Failure into a Success computed from the failure value.
func (r Result[S, F]) Recover(fromFailure func(F) S) Result[S, Unit] {
	MustNotNil(fromFailure == nil, "fromFailure")
	if r.success {
		return Success[S, Unit](r.value)
	}
	return Success[S, Unit](fromFailure(r.failure))
}

func (r Result[S, F]) ToOption() Option[S] {
	if r.success {
		return Some(r.value)
	}
	return None[S]()
}

func (r Result[S, F]) ToSlice() []S {
	if r.success {
		return []S{r.value}
	}
	return []S{}
}

func (r Result[S, F]) ToSeq() iter.Seq[S] {
	return func(yield func(S) bool) {
		if r.success {
			yield(r.value)
		}
	}
}

// AnyMatch reports whether the Result is a Success whose value satisfies the predicate.
func (r Result[S, F]) AnyMatch(predicate func(S) bool) bool {
	MustNotNil(predicate == nil, "predicate")
	return r.success && predicate(r.value)
}

// AllMatch reports whether the Result is a Failure or a Success whose value satisfies the predicate.
func (r Result[S, F]) AllMatch(predicate func(S) bool) bool {
	MustNotNil(predicate == nil, "predicate")
	return !r.success || predicate(r.value)
}

func (r Result[S, F]) Count() int {
	if r.success {
		return 1
	}
	return 0
}

// Equal reports whether both results hold the same variant with deeply equal payloads.
func (r Result[S, F]) Equal(other Result[S, F]) bool {
	if r.success != other.success {
		return false
	}
	if r.success {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.failure, other.failure)
}

func (r Result[S, F]) String() string {
	if r.success {
		return fmt.Sprintf("Success{value=%v}", r.value)
	}
	return fmt.Sprintf("Failure{failure=%v}", r.failure)
}
