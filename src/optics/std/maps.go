package std

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/authcorp/libs/go/src/functional"
	"github.com/authcorp/libs/go/src/optics"
)

// Key focuses on the entry of a map as an Option. Setting None deletes the
// entry; setting Some inserts or replaces it.
func Key[K comparable, V any](key K) optics.Lens[map[K]V, functional.Option[V]] {
	return optics.NewLens(keyName(key),
		func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		func(m map[K]V, opt functional.Option[V]) map[K]V {
			v, ok := opt.Get()
			if !ok {
				if _, exists := m[key]; !exists {
					return m
				}
				result := maps.Clone(m)
				delete(result, key)
				return result
			}
			result := make(map[K]V, len(m)+1)
			maps.Copy(result, m)
			result[key] = v
			return result
		},
	)
}

// KeyOr focuses on the entry of a map, reading defaultVal when it is absent.
// Setting always stores the entry, so like Default it is not a lawful lens
// for maps that lack the key.
func KeyOr[K comparable, V any](key K, defaultVal V) optics.Lens[map[K]V, V] {
	return optics.Dot(Key[K, V](key), Default(defaultVal))
}

// Values traverses the values of a map in ascending key order.
func Values[K cmp.Ordered, V, W any]() optics.Optic[optics.TraversalKind, map[K]V, map[K]W, V, W] {
	return optics.NewTraversal("{}",
		func(m map[K]V) []V {
			keys := slices.Sorted(maps.Keys(m))
			values := make([]V, 0, len(keys))
			for _, k := range keys {
				values = append(values, m[k])
			}
			return values
		},
		func(m map[K]V, fn func(V) W) map[K]W {
			if m == nil {
				return nil
			}
			result := make(map[K]W, len(m))
			for _, k := range slices.Sorted(maps.Keys(m)) {
				result[k] = fn(m[k])
			}
			return result
		},
	)
}

func keyName[K comparable](key K) string {
	if s, ok := any(key).(string); ok {
		return fmt.Sprintf("[%q]", s)
	}
	return fmt.Sprintf("[%v]", key)
}
