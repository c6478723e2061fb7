package optics_test

import (
	"github.com/authcorp/libs/go/src/functional"
	"github.com/authcorp/libs/go/src/optics"
)

type Person struct {
	Name    string
	Age     int
	Address Address
}

type Address struct {
	Street string
	City   string
}

type Point struct {
	X, Y int
}

type Shape interface {
	isShape()
}

type Circle struct {
	Radius int
}

type Square struct {
	Side int
}

func (Circle) isShape() {}
func (Square) isShape() {}

type Box[T any] struct {
	Label string
	Value T
}

var (
	personName = optics.NewLens(".name",
		func(p Person) string { return p.Name },
		func(p Person, name string) Person { p.Name = name; return p },
	)
	personAge = optics.NewLens(".age",
		func(p Person) int { return p.Age },
		func(p Person, age int) Person { p.Age = age; return p },
	)
	personAddress = optics.NewLens(".address",
		func(p Person) Address { return p.Address },
		func(p Person, a Address) Person { p.Address = a; return p },
	)
	addressCity = optics.NewLens(".city",
		func(a Address) string { return a.City },
		func(a Address, city string) Address { a.City = city; return a },
	)

	circle = optics.NewPartial("circle",
		func(c Circle) Shape { return c },
		func(s Shape) (Circle, bool) { c, ok := s.(Circle); return c, ok },
	)
	circleRadius = optics.NewLens(".radius",
		func(c Circle) int { return c.Radius },
		func(c Circle, r int) Circle { c.Radius = r; return c },
	)

	pointPair = optics.NewIso(".xy",
		func(p Point) functional.Pair[int, int] { return functional.NewPair(p.X, p.Y) },
		func(p functional.Pair[int, int]) Point { return Point{X: p.First, Y: p.Second} },
	)
	pairFirst = optics.NewLens(".0",
		func(p functional.Pair[int, int]) int { return p.First },
		func(p functional.Pair[int, int], n int) functional.Pair[int, int] { p.First = n; return p },
	)

	positives = optics.NewTraversal("[>0]",
		func(ns []int) []int {
			var out []int
			for _, n := range ns {
				if n > 0 {
					out = append(out, n)
				}
			}
			return out
		},
		func(ns []int, fn func(int) int) []int {
			out := make([]int, len(ns))
			for i, n := range ns {
				if n > 0 {
					n = fn(n)
				}
				out[i] = n
			}
			return out
		},
	)
)

// boxValue changes the type of the boxed value.
func boxValue[A, B any]() optics.Optic[optics.LensKind, Box[A], Box[B], A, B] {
	return optics.NewLens(".value",
		func(b Box[A]) A { return b.Value },
		func(b Box[A], v B) Box[B] { return Box[B]{Label: b.Label, Value: v} },
	)
}
