// Package sortable provides wrapper types for the supported primitive element
// kinds, implementing the comparison interfaces used by sorted containers.
package sortable

import (
	"github.com/amp-labs/sortedlist/compare"
)

// Sortable combines equality with a strict less-than ordering. Types
// implementing it can drive sorted containers without writing a standalone
// comparator.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator bridges a Sortable type to the three-way comparator consumed by
// sorted containers.
func Comparator[T Sortable[T]]() compare.Func[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case a.Equals(b):
			return 0
		default:
			return 1
		}
	}
}
