package optics

// Dot composes two optics of the same kind. The result focuses through outer
// and then inner, keeps the kind, and is named outer's name followed by
// inner's. Dot is associative and Identity is its unit.
func Dot[K Kind, S, T, U, V, A, B any](outer Optic[K, S, T, U, V], inner Optic[K, U, V, A, B]) Optic[K, S, T, A, B] {
	return combine[K](outer, inner)
}

// Compose composes two optics of any kinds into a traversal. Use it when
// mixing lenses with prisms; for optics of one kind Dot keeps more
// capability.
func Compose[K1, K2 Kind, S, T, U, V, A, B any](outer Optic[K1, S, T, U, V], inner Optic[K2, U, V, A, B]) Optic[TraversalKind, S, T, A, B] {
	return combine[TraversalKind](outer, inner)
}

// combine threads every operation of outer through inner. view and make are
// only defined when both sides define them.
func combine[K, K1, K2 Kind, S, T, U, V, A, B any](outer Optic[K1, S, T, U, V], inner Optic[K2, U, V, A, B]) Optic[K, S, T, A, B] {
	outerList, innerList := outer.lister(), inner.lister()
	outerOver, innerOver := outer.mapper(), inner.mapper()

	c := Optic[K, S, T, A, B]{
		list: func(s S) []A {
			var foci []A
			for _, u := range outerList(s) {
				foci = append(foci, innerList(u)...)
			}
			return foci
		},
		over: func(s S, fn func(A) B) T {
			return outerOver(s, func(u U) V {
				return innerOver(u, fn)
			})
		},
		name: outer.name + inner.name,
	}
	if outer.view != nil && inner.view != nil {
		outerView, innerView := outer.view, inner.view
		c.view = func(s S) A {
			return innerView(outerView(s))
		}
	}
	if outer.make != nil && inner.make != nil {
		outerMake, innerMake := outer.make, inner.make
		c.make = func(b B) T {
			return outerMake(innerMake(b))
		}
	}
	return c
}
