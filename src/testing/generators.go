// Package testing provides rapid generators for the functional value types
// and reusable law checkers for optics.
package testing

import (
	"errors"

	"github.com/authcorp/libs/go/src/functional"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(
			firstGen.Draw(t, "first"),
			secondGen.Draw(t, "second"),
		)
	})
}

// ResultGen generates Result[T] values.
func ResultGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Result[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T] {
		if rapid.Bool().Draw(t, "isOk") {
			return functional.Ok(valueGen.Draw(t, "value"))
		}
		return functional.Err[T](ErrorGen().Draw(t, "error"))
	})
}

// ErrorGen generates error values.
func ErrorGen() *rapid.Generator[error] {
	return rapid.Custom(func(t *rapid.T) error {
		return errors.New(rapid.String().Draw(t, "errorMsg"))
	})
}

// PointerGen generates pointers, nil about half of the time.
func PointerGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[*T] {
	return rapid.Custom(func(t *rapid.T) *T {
		if rapid.Bool().Draw(t, "isNil") {
			return nil
		}
		v := valueGen.Draw(t, "value")
		return &v
	})
}

// SliceOfGen generates slices with specified size range.
func SliceOfGen[T any](elemGen *rapid.Generator[T], minSize, maxSize int) *rapid.Generator[[]T] {
	return rapid.SliceOfN(elemGen, minSize, maxSize)
}

// MapOfGen generates maps with specified size range.
func MapOfGen[K comparable, V any](keyGen *rapid.Generator[K], valueGen *rapid.Generator[V], minSize, maxSize int) *rapid.Generator[map[K]V] {
	return rapid.MapOfN(keyGen, valueGen, minSize, maxSize)
}
