package optics

import "github.com/authcorp/libs/go/src/functional"

// Get returns the single focus of a lens or isomorphism.
func Get[K Viewable, S, T, A, B any](o Optic[K, S, T, A, B], s S) A {
	return o.viewer()(s)
}

// Try returns the first focus, or None when the optic finds nothing.
func Try[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], s S) functional.Option[A] {
	return functional.FromSlice(o.lister()(s))
}

// All returns every focus in traversal order.
func All[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], s S) []A {
	return o.lister()(s)
}

// Has reports whether the optic finds at least one focus in s.
func Has[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], s S) bool {
	return len(o.lister()(s)) > 0
}

// Is is an alias of Has, reading better with prisms: optics.Is(circle, shape).
func Is[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], s S) bool {
	return Has(o, s)
}

// Count returns the number of foci in s.
func Count[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], s S) int {
	return len(o.lister()(s))
}

// Find returns the first focus satisfying pred.
func Find[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], pred func(A) bool, s S) functional.Option[A] {
	for _, a := range o.lister()(s) {
		if pred(a) {
			return functional.Some(a)
		}
	}
	return functional.None[A]()
}

// Fold combines every focus into an accumulator, left to right.
func Fold[K Kind, S, T, A, B, R any](o Optic[K, S, T, A, B], s S, zero R, fn func(R, A) R) R {
	acc := zero
	for _, a := range o.lister()(s) {
		acc = fn(acc, a)
	}
	return acc
}

// Over rebuilds s with fn applied to every focus. Parts of s that are not
// focused are carried over as they are.
func Over[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], fn func(A) B, s S) T {
	return o.mapper()(s, fn)
}

// Map is an alias of Over.
func Map[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], fn func(A) B, s S) T {
	return Over(o, fn, s)
}

// Set replaces every focus of s with b.
func Set[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], b B, s S) T {
	return o.mapper()(s, func(A) B { return b })
}

// New builds a whole structure from a focus alone, using a prism or an
// isomorphism.
func New[K Buildable, S, T, A, B any](o Optic[K, S, T, A, B], b B) T {
	return o.maker()(b)
}

// Name returns the accumulated path of the optic.
func Name[K Kind, S, T, A, B any](o Optic[K, S, T, A, B]) string {
	return o.name
}

// CapabilityOf returns the classification of the optic.
func CapabilityOf[K Kind, S, T, A, B any](o Optic[K, S, T, A, B]) Capability {
	return o.Capability()
}

// To converts forwards through an isomorphism.
func To[S, T, A, B any](o Optic[IsoKind, S, T, A, B], s S) A {
	return Get(o, s)
}

// From converts backwards through an isomorphism.
func From[S, T, A, B any](o Optic[IsoKind, S, T, A, B], b B) T {
	return Get(Reverse(o), b)
}
