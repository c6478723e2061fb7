package testing

import (
	"reflect"
	"testing"

	"github.com/authcorp/libs/go/src/functional"
	"github.com/authcorp/libs/go/src/optics"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

var equalOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
	cmpopts.EquateErrors(),
}

// Equal reports whether two values are structurally equal. Unexported fields
// are compared and nil maps or slices equal empty ones.
func Equal[T any](x, y T) bool {
	return cmp.Equal(x, y, equalOpts...)
}

// Diff returns a human-readable report of the differences between two values.
func Diff(x, y any) string {
	return cmp.Diff(x, y, equalOpts...)
}

// Laws describes the values a law checker draws.
type Laws[S, A any] struct {
	// Structure generates outer structures.
	Structure *rapid.Generator[S]

	// Focus generates focus values.
	Focus *rapid.Generator[A]

	// Funcs are extra update functions for the composition law. Constant
	// functions built from Focus are always used as well.
	Funcs []func(A) A
}

func (l Laws[S, A]) drawFunc(t *rapid.T, label string) func(A) A {
	if len(l.Funcs) > 0 && rapid.Bool().Draw(t, label+"IsCustom") {
		return l.Funcs[rapid.IntRange(0, len(l.Funcs)-1).Draw(t, label+"Index")]
	}
	a := l.Focus.Draw(t, label+"Const")
	return func(A) A { return a }
}

// CheckSetter verifies the setter laws that hold for every optic:
// identity, composition of updates and idempotent overwrite.
func CheckSetter[K optics.Kind, S, A any](t *testing.T, o optics.Optic[K, S, S, A, A], laws Laws[S, A]) {
	t.Helper()
	rapid.Check(t, func(rt *rapid.T) {
		s := laws.Structure.Draw(rt, "s")

		if got := optics.Over(o, func(a A) A { return a }, s); !Equal(got, s) {
			rt.Fatalf("%s: over identity changed structure: %s", o, Diff(s, got))
		}

		f, g := laws.drawFunc(rt, "f"), laws.drawFunc(rt, "g")
		twice := optics.Over(o, f, optics.Over(o, g, s))
		once := optics.Over(o, func(a A) A { return f(g(a)) }, s)
		if !Equal(twice, once) {
			rt.Fatalf("%s: over composition mismatch: %s", o, Diff(once, twice))
		}

		a, b := laws.Focus.Draw(rt, "a"), laws.Focus.Draw(rt, "b")
		overwritten := optics.Set(o, b, optics.Set(o, a, s))
		if direct := optics.Set(o, b, s); !Equal(overwritten, direct) {
			rt.Fatalf("%s: set is not idempotent: %s", o, Diff(direct, overwritten))
		}
	})
}

// CheckLens verifies the setter laws plus get-set, set-get and the single
// focus invariant.
func CheckLens[K optics.Viewable, S, A any](t *testing.T, o optics.Optic[K, S, S, A, A], laws Laws[S, A]) {
	t.Helper()
	CheckSetter(t, o, laws)
	rapid.Check(t, func(rt *rapid.T) {
		s := laws.Structure.Draw(rt, "s")

		if got := optics.Set(o, optics.Get(o, s), s); !Equal(got, s) {
			rt.Fatalf("%s: set(get(s), s) != s: %s", o, Diff(s, got))
		}

		a := laws.Focus.Draw(rt, "a")
		if got := optics.Get(o, optics.Set(o, a, s)); !Equal(got, a) {
			rt.Fatalf("%s: get(set(a, s)) != a: %s", o, Diff(a, got))
		}

		foci := optics.All(o, s)
		if len(foci) != 1 || !Equal(foci[0], optics.Get(o, s)) {
			rt.Fatalf("%s: expected exactly the viewed focus, got %d foci", o, len(foci))
		}
	})
}

// CheckPrism verifies the setter laws plus both prism round trips.
func CheckPrism[K optics.Buildable, S, A any](t *testing.T, o optics.Optic[K, S, S, A, A], laws Laws[S, A]) {
	t.Helper()
	CheckSetter(t, o, laws)
	rapid.Check(t, func(rt *rapid.T) {
		a := laws.Focus.Draw(rt, "a")
		if got := optics.Try(o, optics.New(o, a)); !Equal(got, functional.Some(a)) {
			rt.Fatalf("%s: try(new(a)) != Some(a): %s", o, Diff(functional.Some(a), got))
		}

		s := laws.Structure.Draw(rt, "s")
		if focus, ok := optics.Try(o, s).Get(); ok {
			if got := optics.New(o, focus); !Equal(got, s) {
				rt.Fatalf("%s: new(try(s)) != s: %s", o, Diff(s, got))
			}
			return
		}
		if got := optics.Set(o, a, s); !Equal(got, s) {
			rt.Fatalf("%s: set on a mismatch changed structure: %s", o, Diff(s, got))
		}
	})
}

// CheckIso verifies both round trips of an isomorphism and then checks it as
// a lens and as a prism.
func CheckIso[S, A any](t *testing.T, o optics.Iso[S, A], laws Laws[S, A]) {
	t.Helper()
	rapid.Check(t, func(rt *rapid.T) {
		s := laws.Structure.Draw(rt, "s")
		if got := optics.From(o, optics.To(o, s)); !Equal(got, s) {
			rt.Fatalf("%s: from(to(s)) != s: %s", o, Diff(s, got))
		}
		a := laws.Focus.Draw(rt, "a")
		if got := optics.To(o, optics.From(o, a)); !Equal(got, a) {
			rt.Fatalf("%s: to(from(a)) != a: %s", o, Diff(a, got))
		}
	})
	CheckLens(t, optics.AsLens(o), laws)
	CheckPrism(t, optics.AsPrism(o), laws)
}
