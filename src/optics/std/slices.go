package std

import (
	"slices"
	"strconv"

	"github.com/authcorp/libs/go/src/functional"
	"github.com/authcorp/libs/go/src/optics"
)

// At focuses on the element at index i, finding nothing when i is out of
// range. Read it with optics.Try. Updates out of range leave the slice as it
// is, and no update ever changes the length of the slice.
func At[A any](i int) optics.Traversal[[]A, A] {
	inRange := func(s []A) bool {
		return i >= 0 && i < len(s)
	}
	return optics.NewTraversal("["+strconv.Itoa(i)+"]?",
		func(s []A) []A {
			if !inRange(s) {
				return nil
			}
			return []A{s[i]}
		},
		func(s []A, fn func(A) A) []A {
			if !inRange(s) {
				return s
			}
			result := slices.Clone(s)
			result[i] = fn(s[i])
			return result
		},
	)
}

// Each traverses every element of a slice.
func Each[A, B any]() optics.Optic[optics.TraversalKind, []A, []B, A, B] {
	return optics.NewTraversal("[]",
		func(s []A) []A {
			return slices.Clone(s)
		},
		func(s []A, fn func(A) B) []B {
			if s == nil {
				return nil
			}
			result := make([]B, len(s))
			for i, a := range s {
				result[i] = fn(a)
			}
			return result
		},
	)
}

// Indexed traverses every element of a slice paired with its index. Lift
// element optics with optics.Ixd to compose them after Indexed.
func Indexed[A, B any]() optics.Optic[optics.TraversalKind, []A, []B, functional.Pair[int, A], B] {
	return optics.NewTraversal("[#]",
		func(s []A) []functional.Pair[int, A] {
			return functional.EnumerateSlice(s)
		},
		func(s []A, fn func(functional.Pair[int, A]) B) []B {
			if s == nil {
				return nil
			}
			result := make([]B, len(s))
			for i, a := range s {
				result[i] = fn(functional.NewPair(i, a))
			}
			return result
		},
	)
}

// Filtered traverses the elements of a slice that satisfy pred. Updates must
// keep pred true for the traversal to stay lawful.
func Filtered[A any](pred func(A) bool) optics.Traversal[[]A, A] {
	return optics.NewTraversal("[?]",
		func(s []A) []A {
			var foci []A
			for _, a := range s {
				if pred(a) {
					foci = append(foci, a)
				}
			}
			return foci
		},
		func(s []A, fn func(A) A) []A {
			if s == nil {
				return nil
			}
			result := make([]A, len(s))
			for i, a := range s {
				if pred(a) {
					a = fn(a)
				}
				result[i] = a
			}
			return result
		},
	)
}
