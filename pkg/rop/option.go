package rop

import (
	"fmt"
	"reflect"
)

// Option is a slot holding zero or one value.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf builds an Option from the comma-ok form.
func OptionOf[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) OrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

func (o Option[T]) Equal(other Option[T]) bool {
	if o.present != other.present {
		return false
	}
	return !o.present || reflect.DeepEqual(o.value, other.value)
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
