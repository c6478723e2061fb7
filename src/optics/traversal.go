package optics

import "github.com/authcorp/libs/go/src/functional"

// NewTraversal builds a traversal from a function listing every focus and a
// function rebuilding the structure with each focus transformed. Both must
// visit foci in the same order.
func NewTraversal[S, T, A, B any](name string, listAll func(S) []A, mapAll func(S, func(A) B) T) Optic[TraversalKind, S, T, A, B] {
	return Optic[TraversalKind, S, T, A, B]{
		list: listAll,
		over: mapAll,
		name: name,
	}
}

// AsTraversal widens any optic to a traversal.
func AsTraversal[K Kind, S, T, A, B any](o Optic[K, S, T, A, B]) Optic[TraversalKind, S, T, A, B] {
	return retag[TraversalKind](o)
}

// Ixd lifts an optic so that it accepts a structure paired with an index,
// such as the foci of an indexed traversal. The index is read past and then
// dropped: the lifted optic rebuilds a bare T and its name is unchanged.
func Ixd[I any, K Kind, S, T, A, B any](o Optic[K, S, T, A, B]) Optic[K, functional.Pair[I, S], T, A, B] {
	lifted := Optic[K, functional.Pair[I, S], T, A, B]{
		make: o.make,
		name: o.name,
	}
	if o.view != nil {
		lifted.view = func(p functional.Pair[I, S]) A {
			return o.view(p.Second)
		}
	}
	list, over := o.lister(), o.mapper()
	lifted.list = func(p functional.Pair[I, S]) []A {
		return list(p.Second)
	}
	lifted.over = func(p functional.Pair[I, S], fn func(A) B) T {
		return over(p.Second, fn)
	}
	return lifted
}
