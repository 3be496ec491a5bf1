package async

import "github.com/ib-77/twotrack/pkg/rop"

// Bind runs onSuccess against the success value. A Failure is returned as an
// already resolved promise and onSuccess is not called.
func Bind[S, S2, F any](input rop.Result[S, F],
	onSuccess func(S) *Promise[rop.Result[S2, F]]) *Promise[rop.Result[S2, F]] {

	rop.MustNotNil(onSuccess == nil, "onSuccess")
	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	return Resolved(rop.Failure[S2, F](input.Failure()))
}

// BindFailure runs onFailure against the failure value. A Success is returned
// as an already resolved promise.
func BindFailure[S, F, F2 any](input rop.Result[S, F],
	onFailure func(F) *Promise[rop.Result[S, F2]]) *Promise[rop.Result[S, F2]] {

	rop.MustNotNil(onFailure == nil, "onFailure")
	if f, ok := input.GetFailure(); ok {
		return onFailure(f)
	}
	return Resolved(rop.Success[S, F2](input.Value()))
}

// Binder is the operator form of Bind.
func Binder[S, S2, F any](onSuccess func(S) *Promise[rop.Result[S2, F]]) func(rop.Result[S, F]) *Promise[rop.Result[S2, F]] {
	rop.MustNotNil(onSuccess == nil, "onSuccess")
	return func(input rop.Result[S, F]) *Promise[rop.Result[S2, F]] {
		return Bind(input, onSuccess)
	}
}

// FailureBinder is the operator form of BindFailure.
func FailureBinder[S, F, F2 any](onFailure func(F) *Promise[rop.Result[S, F2]]) func(rop.Result[S, F]) *Promise[rop.Result[S, F2]] {
	rop.MustNotNil(onFailure == nil, "onFailure")
	return func(input rop.Result[S, F]) *Promise[rop.Result[S, F2]] {
		return BindFailure(input, onFailure)
	}
}
