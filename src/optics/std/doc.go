// Package std provides prebuilt optics for Go containers and the value types
// of package functional. Every optic here is built with the constructors of
// package optics and named after the path fragment it adds:
//
//	Field("name")  .name     lens
//	Key(k)         [k]       lens onto Option
//	At(i)          [i]?      traversal onto the element
//	Some()         ?         prism
//	Each()         []        traversal
//
// None of them mutate their input; updates return fresh maps and slices.
package std
