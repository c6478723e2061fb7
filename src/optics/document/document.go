// Package document provides optics over decoded YAML and JSON trees.
//
// A tree is an any holding map[string]any, []any, string, float64, bool or
// nil. DecodeYAML and DecodeJSON produce trees in exactly that shape, so the
// same optics read both formats:
//
//	tree, _ := document.DecodeYAML(data)
//	port := optics.Compose(document.Path("server", "port"), document.Float())
//	n := optics.Try(port, tree)
//
// Updates copy the maps and slices along the focused path and leave the
// input tree untouched.
package document

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/authcorp/libs/go/src/optics"
)

// Node is an optic from a tree into a subtree.
type Node = optics.Traversal[any, any]

// Key focuses on the member k of an object. It finds nothing when the tree
// is not an object or has no such member.
func Key(k string) Node {
	return optics.NewTraversal("."+k,
		func(tree any) []any {
			obj, ok := tree.(map[string]any)
			if !ok {
				return nil
			}
			v, ok := obj[k]
			if !ok {
				return nil
			}
			return []any{v}
		},
		func(tree any, fn func(any) any) any {
			obj, ok := tree.(map[string]any)
			if !ok {
				return tree
			}
			v, ok := obj[k]
			if !ok {
				return tree
			}
			result := maps.Clone(obj)
			result[k] = fn(v)
			return result
		},
	)
}

// Elem focuses on the element i of an array.
func Elem(i int) Node {
	return optics.NewTraversal("["+strconv.Itoa(i)+"]",
		func(tree any) []any {
			arr, ok := tree.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return nil
			}
			return []any{arr[i]}
		},
		func(tree any, fn func(any) any) any {
			arr, ok := tree.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return tree
			}
			result := slices.Clone(arr)
			result[i] = fn(arr[i])
			return result
		},
	)
}

// Each focuses on every element of an array.
func Each() Node {
	return optics.NewTraversal("[]",
		func(tree any) []any {
			arr, _ := tree.([]any)
			return slices.Clone(arr)
		},
		func(tree any, fn func(any) any) any {
			arr, ok := tree.([]any)
			if !ok {
				return tree
			}
			result := make([]any, len(arr))
			for i, v := range arr {
				result[i] = fn(v)
			}
			return result
		},
	)
}

// Path focuses through a sequence of object members.
func Path(keys ...string) Node {
	path := optics.AsTraversal(optics.Identity[any]())
	for _, k := range keys {
		path = optics.Dot(path, Key(k))
	}
	return path
}

// String focuses on a string leaf.
func String() optics.Prism[any, string] {
	return leaf[string](":string")
}

// Float focuses on a number leaf.
func Float() optics.Prism[any, float64] {
	return leaf[float64](":number")
}

// Bool focuses on a boolean leaf.
func Bool() optics.Prism[any, bool] {
	return leaf[bool](":bool")
}

func leaf[A any](name string) optics.Prism[any, A] {
	return optics.NewPartial(name,
		func(a A) any {
			return a
		},
		func(tree any) (A, bool) {
			a, ok := tree.(A)
			return a, ok
		},
	)
}

// normalize rewrites decoder output into the tree shape the optics expect.
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case time.Time:
		return x.Format(time.RFC3339Nano), nil
	case nil, string, float64, bool:
		return x, nil
	default:
		return nil, fmt.Errorf("document: unsupported node type %T", v)
	}
}
