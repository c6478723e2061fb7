package optics

// Optic focuses from a structure S onto values A, rebuilding T when the foci
// are replaced by B. Build optics with NewLens, NewPrism, NewIso,
// NewTraversal or Identity; the zero value has no operations.
type Optic[K Kind, S, T, A, B any] struct {
	view func(S) A
	list func(S) []A
	make func(B) T
	over func(S, func(A) B) T
	name string
}

// Lens is a lens that does not change types.
type Lens[S, A any] = Optic[LensKind, S, S, A, A]

// Prism is a prism that does not change types.
type Prism[S, A any] = Optic[PrismKind, S, S, A, A]

// Iso is an isomorphism that does not change types.
type Iso[S, A any] = Optic[IsoKind, S, S, A, A]

// Traversal is a traversal that does not change types.
type Traversal[S, A any] = Optic[TraversalKind, S, S, A, A]

// Name returns the accumulated path of the optic, such as ".info.stuff[7]?".
func (o Optic[K, S, T, A, B]) Name() string {
	return o.name
}

// Capability returns the classification carried by the optic's kind.
func (o Optic[K, S, T, A, B]) Capability() Capability {
	var k K
	return k.Capability()
}

func (o Optic[K, S, T, A, B]) String() string {
	return o.Capability().String() + "(" + o.name + ")"
}

func (o Optic[K, S, T, A, B]) misuse(op string) *CapabilityError {
	return &CapabilityError{Op: op, Optic: o.name, Capability: o.Capability()}
}

func (o Optic[K, S, T, A, B]) viewer() func(S) A {
	if o.view == nil {
		panic(o.misuse("view"))
	}
	return o.view
}

func (o Optic[K, S, T, A, B]) maker() func(B) T {
	if o.make == nil {
		panic(o.misuse("make"))
	}
	return o.make
}

func (o Optic[K, S, T, A, B]) lister() func(S) []A {
	if o.list == nil {
		panic(o.misuse("list"))
	}
	return o.list
}

func (o Optic[K, S, T, A, B]) mapper() func(S, func(A) B) T {
	if o.over == nil {
		panic(o.misuse("over"))
	}
	return o.over
}

// retag reinterprets the operation bundle under another kind.
func retag[K2, K Kind, S, T, A, B any](o Optic[K, S, T, A, B]) Optic[K2, S, T, A, B] {
	return Optic[K2, S, T, A, B](o)
}
