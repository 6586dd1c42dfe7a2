// Package compare provides equality and ordering capabilities for values.
package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Comparable is a generic interface for types that can compare themselves for
// equality. Types implementing this interface must provide their own Equals
// method that determines whether two values are equal according to the type's
// semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Comparator is the three-way ordering capability consumed by sorted
// containers. Compare returns a negative value when a orders before b, zero
// when the two order equally, and a positive value when a orders after b.
//
// Implementations must form a strict weak ordering. Sorted containers rely on
// that for early-exit scans and perform no runtime validation; a comparator
// that violates it silently produces wrong results.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// Func adapts an ordinary three-way function to the Comparator interface.
type Func[T any] func(a, b T) int

// Compare calls the underlying function.
func (f Func[T]) Compare(a, b T) int {
	return f(a, b)
}

// Natural returns a comparator ordering values by the type's natural
// ascending order.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator that inverts the order of c.
func Reverse[T any](c Comparator[T]) Func[T] {
	return func(a, b T) int {
		return c.Compare(b, a)
	}
}

// NaturalStrings returns a comparator ordering strings in natural sort order,
// where runs of digits compare numerically ("file2" before "file10").
func NaturalStrings() Func[string] {
	return func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natsort.Compare(a, b):
			return -1
		default:
			return 1
		}
	}
}
