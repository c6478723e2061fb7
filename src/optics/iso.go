package optics

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// NewIso builds an isomorphism from a pair of inverse conversions.
func NewIso[S, T, A, B any](name string, to func(S) A, from func(B) T) Optic[IsoKind, S, T, A, B] {
	return Optic[IsoKind, S, T, A, B]{
		view: to,
		list: func(s S) []A {
			return []A{to(s)}
		},
		make: from,
		over: func(s S, fn func(A) B) T {
			return from(fn(to(s)))
		},
		name: name,
	}
}

// Identity is the unit of composition: it focuses on the whole structure.
func Identity[S any]() Iso[S, S] {
	return NewIso("", func(s S) S { return s }, func(s S) S { return s })
}

// Reverse swaps the directions of an isomorphism. The name is reversed too,
// so a round trip through Reverse restores the original path.
func Reverse[S, T, A, B any](o Optic[IsoKind, S, T, A, B]) Optic[IsoKind, B, A, T, S] {
	to, from := o.viewer(), o.maker()
	return Optic[IsoKind, B, A, T, S]{
		view: from,
		list: func(b B) []T {
			return []T{from(b)}
		},
		make: to,
		over: func(b B, fn func(T) S) A {
			return to(fn(from(b)))
		},
		name: reverseString(o.name),
	}
}

// reverseString reverses s rune by rune. Runs of bytes that are not valid
// UTF-8 move as one unit, so reversing twice always gives s back.
func reverseString(s string) string {
	var parts []string
	for i := 0; i < len(s); {
		start := i
		i += utf8SegmentLen(s[i:])
		if invalidByte(s[start:]) {
			for i < len(s) && invalidByte(s[i:]) {
				i++
			}
		}
		parts = append(parts, s[start:i])
	}
	slices.Reverse(parts)
	return strings.Join(parts, "")
}

func utf8SegmentLen(s string) int {
	_, size := utf8.DecodeRuneInString(s)
	return size
}

func invalidByte(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return r == utf8.RuneError && size == 1
}
