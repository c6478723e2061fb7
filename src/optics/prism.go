package optics

import "github.com/authcorp/libs/go/src/functional"

// NewPrism builds a prism from a constructor and a matcher. The matcher
// returns Right with the focus when the structure is the focused variant, or
// Left with the structure to hand back unchanged when it is not.
func NewPrism[S, T, A, B any](name string, build func(B) T, match func(S) functional.Either[T, A]) Optic[PrismKind, S, T, A, B] {
	return Optic[PrismKind, S, T, A, B]{
		list: func(s S) []A {
			return match(s).RightOption().ToSlice()
		},
		make: build,
		over: func(s S, fn func(A) B) T {
			return functional.MatchEither(match(s),
				func(t T) T { return t },
				func(a A) T { return build(fn(a)) },
			)
		},
		name: name,
	}
}

// NewPartial builds a same-type prism from a matcher in comma-ok style.
// Mismatches hand the structure back untouched.
func NewPartial[S, A any](name string, build func(A) S, match func(S) (A, bool)) Prism[S, A] {
	return NewPrism(name, build, func(s S) functional.Either[S, A] {
		if a, ok := match(s); ok {
			return functional.Right[S](a)
		}
		return functional.Left[S, A](s)
	})
}

// AsPrism forgets that an isomorphism always has a focus.
func AsPrism[S, T, A, B any](o Optic[IsoKind, S, T, A, B]) Optic[PrismKind, S, T, A, B] {
	return retag[PrismKind](o)
}
