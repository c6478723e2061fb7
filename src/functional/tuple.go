package functional

// Pair represents a tuple of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Swap returns a new Pair with swapped elements.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// MapPairFirst applies a function to the first element.
func MapPairFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Pair[C, B]{First: fn(p.First), Second: p.Second}
}

// MapPairSecond applies a function to the second element.
func MapPairSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Pair[A, C]{First: p.First, Second: fn(p.Second)}
}

// EnumerateSlice returns pairs of (index, value) for a slice.
func EnumerateSlice[T any](items []T) []Pair[int, T] {
	result := make([]Pair[int, T], len(items))
	for i, item := range items {
		result[i] = NewPair(i, item)
	}
	return result
}
