package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValuePresent is reported when the payload of the other variant is requested.
	ErrNoValuePresent = errors.New("no value present")
	// ErrNilArgument is reported when a combinator receives a nil function.
	ErrNilArgument = errors.New("nil argument")
)

// MustNotNil panics with ErrNilArgument when isNil is set.
// Combinators call it before looking at the variant.
func MustNotNil(isNil bool, name string) {
	if isNil {
		panic(fmt.Errorf("%w: %s", ErrNilArgument, name))
	}
}

func noValuePresent(side string) error {
	return fmt.Errorf("%w: %s", ErrNoValuePresent, side)
}
