// Package optics provides composable, capability-typed optics for reading and
// immutably updating nested data.
//
// Every optic is an Optic[K, S, T, A, B]: a bundle of operations that focuses
// from an outer structure S (rebuilt as T) onto zero or more inner values A
// (replaced by B). The kind parameter K records what the optic can do:
//
//	IsoKind        view and make, exactly one focus, lossless
//	LensKind       view, exactly one focus
//	PrismKind      make, zero or one focus
//	TraversalKind  zero or more foci
//
// Actions constrain K so that reading a guaranteed focus (Get) or building a
// structure from a focus alone (New) on an optic that cannot do it is a
// compile error:
//
//	name := optics.Dot(person.Address, address.City)
//	city := optics.Get(name, p)
//	p2 := optics.Set(name, "Lisbon", p)
//
// Dot composes optics of the same kind and keeps it. Compose accepts any two
// kinds and yields a traversal. AsLens, AsPrism and AsTraversal widen an optic
// to a weaker kind so that Dot can join it with a neighbour.
//
// Optics are immutable values and safe to share between goroutines.
package optics
