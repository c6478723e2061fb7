package optics

// Capability is the runtime classification of an optic.
type Capability uint8

const (
	// CapabilityIso has exactly one focus and can rebuild the structure from it.
	CapabilityIso Capability = iota
	// CapabilityLens has exactly one focus.
	CapabilityLens
	// CapabilityPrism has at most one focus and can build the structure from it.
	CapabilityPrism
	// CapabilityTraversal has any number of foci.
	CapabilityTraversal
)

func (c Capability) String() string {
	switch c {
	case CapabilityIso:
		return "iso"
	case CapabilityLens:
		return "lens"
	case CapabilityPrism:
		return "prism"
	case CapabilityTraversal:
		return "traversal"
	default:
		return "unknown"
	}
}

// Join returns the weakest capability shared by c and other.
func (c Capability) Join(other Capability) Capability {
	switch {
	case c == CapabilityIso:
		return other
	case other == CapabilityIso:
		return c
	case c == other:
		return c
	default:
		return CapabilityTraversal
	}
}

// CanView reports whether optics of this capability always have exactly one focus.
func (c Capability) CanView() bool {
	return c == CapabilityIso || c == CapabilityLens
}

// CanMake reports whether optics of this capability can build a structure from a focus.
func (c Capability) CanMake() bool {
	return c == CapabilityIso || c == CapabilityPrism
}

// Kind is the sealed set of marker types used as the first type parameter of
// Optic. The markers carry no data.
type Kind interface {
	Capability() Capability
	sealed()
}

type (
	// IsoKind marks optics that can view, list, make and update.
	IsoKind struct{}
	// LensKind marks optics that can view, list and update.
	LensKind struct{}
	// PrismKind marks optics that can list, make and update.
	PrismKind struct{}
	// TraversalKind marks optics that can only list and update.
	TraversalKind struct{}
)

func (IsoKind) Capability() Capability       { return CapabilityIso }
func (LensKind) Capability() Capability      { return CapabilityLens }
func (PrismKind) Capability() Capability     { return CapabilityPrism }
func (TraversalKind) Capability() Capability { return CapabilityTraversal }

func (IsoKind) sealed()       {}
func (LensKind) sealed()      {}
func (PrismKind) sealed()     {}
func (TraversalKind) sealed() {}

// Viewable is satisfied by kinds that guarantee exactly one focus.
type Viewable interface {
	Kind
	IsoKind | LensKind
}

// Buildable is satisfied by kinds that can build a whole structure from a focus.
type Buildable interface {
	Kind
	IsoKind | PrismKind
}
