package optics

// NewLens builds a lens from a getter and a setter. The setter receives the
// original structure so that unfocused parts survive the update.
func NewLens[S, T, A, B any](name string, get func(S) A, set func(S, B) T) Optic[LensKind, S, T, A, B] {
	return Optic[LensKind, S, T, A, B]{
		view: get,
		list: func(s S) []A {
			return []A{get(s)}
		},
		over: func(s S, fn func(A) B) T {
			return set(s, fn(get(s)))
		},
		name: name,
	}
}

// AsLens forgets that an isomorphism can build structures from a focus.
func AsLens[S, T, A, B any](o Optic[IsoKind, S, T, A, B]) Optic[LensKind, S, T, A, B] {
	return retag[LensKind](o)
}
