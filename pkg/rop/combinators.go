package rop

func Map[S, S2, F any](input Result[S, F], onSuccess func(S) S2) Result[S2, F] {
	MustNotNil(onSuccess == nil, "onSuccess")
	if input.success {
		return Success[S2, F](onSuccess(input.value))
	}
	return Failure[S2, F](input.failure)
}

func MapFailure[S, F, F2 any](input Result[S, F], onFailure func(F) F2) Result[S, F2] {
	MustNotNil(onFailure == nil, "onFailure")
	if input.success {
		return Success[S, F2](input.value)
	}
	return Failure[S, F2](onFailure(input.failure))
}

// MapEither retargets both sides at once.
func MapEither[S, S2, F, F2 any](input Result[S, F],
	onSuccess func(S) S2,
	onFailure func(F) F2) Result[S2, F2] {

	MustNotNil(onSuccess == nil, "onSuccess")
	MustNotNil(onFailure == nil, "onFailure")
	if input.success {
		return Success[S2, F2](onSuccess(input.value))
	}
	return Failure[S2, F2](onFailure(input.failure))
}

// Bind switches to the result of onSuccess; a Failure passes through.
func Bind[S, S2, F any](input Result[S, F], onSuccess func(S) Result[S2, F]) Result[S2, F] {
	MustNotNil(onSuccess == nil, "onSuccess")
	if input.success {
		return onSuccess(input.value)
	}
	return Failure[S2, F](input.failure)
}

// FlatMap is an alias for Bind.
func FlatMap[S, S2, F any](input Result[S, F], onSuccess func(S) Result[S2, F]) Result[S2, F] {
	return Bind(input, onSuccess)
}

func BindFailure[S, F, F2 any](input Result[S, F], onFailure func(F) Result[S, F2]) Result[S, F2] {
	MustNotNil(onFailure == nil, "onFailure")
	if input.success {
		return Success[S, F2](input.value)
	}
	return onFailure(input.failure)
}

func BindEither[S, S2, F, F2 any](input Result[S, F],
	onSuccess func(S) Result[S2, F2],
	onFailure func(F) Result[S2, F2]) Result[S2, F2] {

	MustNotNil(onSuccess == nil, "onSuccess")
	MustNotNil(onFailure == nil, "onFailure")
	if input.success {
		return onSuccess(input.value)
	}
	return onFailure(input.failure)
}

// Fold collapses the result to a plain value via one of two handlers.
func Fold[S, F, R any](input Result[S, F],
	onSuccess func(S) R,
	onFailure func(F) R) R {

	MustNotNil(onSuccess == nil, "onSuccess")
	MustNotNil(onFailure == nil, "onFailure")
	if input.success {
		return onSuccess(input.value)
	}
	return onFailure(input.failure)
}

// Apply feeds the whole result to fn.
func Apply[S, F, R any](input Result[S, F], fn func(Result[S, F]) R) R {
	MustNotNil(fn == nil, "fn")
	return fn(input)
}
