package op

import "github.com/ib-77/twotrack/pkg/rop"

// Compose returns an operator applying first, then second.
func Compose[A, B, C any](first func(A) B, second func(B) C) func(A) C {
	rop.MustNotNil(first == nil, "first")
	rop.MustNotNil(second == nil, "second")
	return func(a A) C {
		return second(first(a))
	}
}

func Pipe2[A, B, C any](input A, op1 func(A) B, op2 func(B) C) C {
	return Compose(op1, op2)(input)
}

func Pipe3[A, B, C, D any](input A, op1 func(A) B, op2 func(B) C, op3 func(C) D) D {
	return Compose(Compose(op1, op2), op3)(input)
}

func Pipe4[A, B, C, D, E any](input A,
	op1 func(A) B, op2 func(B) C, op3 func(C) D, op4 func(D) E) E {
	return Compose(Compose(Compose(op1, op2), op3), op4)(input)
}

func Pipe5[A, B, C, D, E, G any](input A,
	op1 func(A) B, op2 func(B) C, op3 func(C) D, op4 func(D) E, op5 func(E) G) G {
	return Compose(Compose(Compose(Compose(op1, op2), op3), op4), op5)(input)
}
