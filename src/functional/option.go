// Package functional provides the small set of value types that optics read
// and write at their boundaries: Option for possibly absent foci, Either for
// prism matches, Pair for tuples and indexed foci, Result for fallible values.
package functional

import "fmt"

// Option represents an optional value that may or may not be present.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer. A nil pointer is None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromSlice returns Some of the first element, or None for an empty slice.
func FromSlice[T any](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}
	return Some(items[0])
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it was present, comma-ok style.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the contained value or panics if empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("called Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// Filter returns None if predicate returns false.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToSlice converts Option to a slice (empty or single element).
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// ToPtr converts Option to a pointer to a copy of the value.
func (o Option[T]) ToPtr() *T {
	if o.present {
		v := o.value
		return &v
	}
	return nil
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MatchOption executes one of two functions and returns the result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
