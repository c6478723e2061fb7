package std

import (
	"strconv"

	"github.com/authcorp/libs/go/src/functional"
	"github.com/authcorp/libs/go/src/optics"
)

// Some focuses on the value of a present Option.
func Some[A, B any]() optics.Optic[optics.PrismKind, functional.Option[A], functional.Option[B], A, B] {
	return optics.NewPrism("?",
		functional.Some[B],
		func(o functional.Option[A]) functional.Either[functional.Option[B], A] {
			return functional.MatchOption(o,
				functional.Right[functional.Option[B], A],
				func() functional.Either[functional.Option[B], A] {
					return functional.Left[functional.Option[B], A](functional.None[B]())
				},
			)
		},
	)
}

// Default reads an Option with a fallback value and writes back Some. It is
// not a lawful lens: setting the value read from None stores Some(defaultVal)
// instead of leaving None in place.
func Default[A any](defaultVal A) optics.Lens[functional.Option[A], A] {
	return optics.NewLens("??",
		func(o functional.Option[A]) A {
			return o.UnwrapOr(defaultVal)
		},
		func(_ functional.Option[A], a A) functional.Option[A] {
			return functional.Some(a)
		},
	)
}

// Pointer focuses on the value behind a non-nil pointer. Updates allocate a
// new value and never write through the original pointer.
func Pointer[A any]() optics.Prism[*A, A] {
	return optics.NewPartial("*",
		func(a A) *A {
			return functional.Some(a).ToPtr()
		},
		func(p *A) (A, bool) {
			return functional.FromPtr(p).Get()
		},
	)
}

// First focuses on the first element of a Pair.
func First[A, B, C any]() optics.Optic[optics.LensKind, functional.Pair[A, B], functional.Pair[C, B], A, C] {
	return optics.NewLens(".0",
		func(p functional.Pair[A, B]) A {
			return p.First
		},
		func(p functional.Pair[A, B], c C) functional.Pair[C, B] {
			return functional.MapPairFirst(p, func(A) C { return c })
		},
	)
}

// Second focuses on the second element of a Pair.
func Second[A, B, C any]() optics.Optic[optics.LensKind, functional.Pair[A, B], functional.Pair[A, C], B, C] {
	return optics.NewLens(".1",
		func(p functional.Pair[A, B]) B {
			return p.Second
		},
		func(p functional.Pair[A, B], c C) functional.Pair[A, C] {
			return functional.MapPairSecond(p, func(B) C { return c })
		},
	)
}

// Swap exchanges the elements of a Pair.
func Swap[A, B any]() optics.Iso[functional.Pair[A, B], functional.Pair[B, A]] {
	return optics.NewIso("~",
		functional.Pair[A, B].Swap,
		functional.Pair[B, A].Swap,
	)
}

// Left focuses on the left value of an Either.
func Left[L, R, M any]() optics.Optic[optics.PrismKind, functional.Either[L, R], functional.Either[M, R], L, M] {
	return optics.NewPrism(".left",
		functional.Left[M, R],
		func(e functional.Either[L, R]) functional.Either[functional.Either[M, R], L] {
			return functional.MapEitherLeft(e.Swap(), functional.Right[M, R])
		},
	)
}

// Right focuses on the right value of an Either.
func Right[L, R, S any]() optics.Optic[optics.PrismKind, functional.Either[L, R], functional.Either[L, S], R, S] {
	return optics.NewPrism(".right",
		functional.Right[L, S],
		func(e functional.Either[L, R]) functional.Either[functional.Either[L, S], R] {
			return functional.MapEitherLeft(e, functional.Left[L, S])
		},
	)
}

// Ok focuses on the value of a successful Result.
func Ok[A, B any]() optics.Optic[optics.PrismKind, functional.Result[A], functional.Result[B], A, B] {
	return optics.NewPrism(".ok",
		functional.Ok[B],
		func(r functional.Result[A]) functional.Either[functional.Result[B], A] {
			return functional.MatchOption(r.ToOption(),
				functional.Right[functional.Result[B], A],
				func() functional.Either[functional.Result[B], A] {
					return functional.Left[functional.Result[B], A](functional.Err[B](r.UnwrapErr()))
				},
			)
		},
	)
}

// Atoi focuses on the integer spelled by a string in canonical decimal form.
// Strings such as "+1", "01" or " 1" do not match, so that rebuilding a
// matched string always gives it back.
func Atoi() optics.Prism[string, int] {
	return optics.NewPartial("#int",
		strconv.Itoa,
		func(s string) (int, bool) {
			return functional.TryFunc(strconv.Atoi(s)).
				ToOption().
				Filter(func(n int) bool { return strconv.Itoa(n) == s }).
				Get()
		},
	)
}
