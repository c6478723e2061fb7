package std

import "github.com/authcorp/libs/go/src/optics"

// Field builds a lens named ".name" over a struct field.
func Field[S, A any](name string, get func(S) A, set func(S, A) S) optics.Lens[S, A] {
	return optics.NewLens("."+name, get, set)
}
