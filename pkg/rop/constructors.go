package rop

// FromOption returns a Success with the option's value, or a Failure built by failure.
func FromOption[S, F any](option Option[S], failure func() F) Result[S, F] {
	MustNotNil(failure == nil, "failure")
	if v, ok := option.Get(); ok {
		return Success[S, F](v)
	}
	return Failure[S, F](failure())
}

// FromOptionOrNone is FromOption without failure detail: an absent option gives Failure(None).
func FromOptionOrNone[S, F any](option Option[S]) Result[S, Option[F]] {
	if v, ok := option.Get(); ok {
		return Success[S, Option[F]](v)
	}
	return Failure[S, Option[F]](None[F]())
}

// FromPredicate returns a Success with value when predicate holds, otherwise a Failure built by failure.
func FromPredicate[S, F any](value S, predicate func(S) bool, failure func() F) Result[S, F] {
	MustNotNil(predicate == nil, "predicate")
	MustNotNil(failure == nil, "failure")
	if predicate(value) {
		return Success[S, F](value)
	}
	return Failure[S, F](failure())
}

func FromPredicateOrNone[S, F any](value S, predicate func(S) bool) Result[S, Option[F]] {
	MustNotNil(predicate == nil, "predicate")
	if predicate(value) {
		return Success[S, Option[F]](value)
	}
	return Failure[S, Option[F]](None[F]())
}

// FromBool calls exactly one of the suppliers, chosen by flag.
func FromBool[S, F any](flag bool, success func() S, failure func() F) Result[S, F] {
	MustNotNil(success == nil, "success")
	MustNotNil(failure == nil, "failure")
	if flag {
		return Success[S, F](success())
	}
	return Failure[S, F](failure())
}

// FromPair converts a (value, error) return into a Result.
func FromPair[S any](value S, err error) Result[S, error] {
	if err != nil {
		return Failure[S, error](err)
	}
	return Success[S, error](value)
}
