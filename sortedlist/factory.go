package sortedlist

import (
	"github.com/amp-labs/sortedlist/compare"
	"github.com/amp-labs/sortedlist/errors"
)

// NewList creates an empty list of the given kind, ordered by the natural
// ascending order of its values.
func NewList(kind Kind) *List {
	return NewListWith(kind, naturalFor(kind))
}

// NewListWith creates an empty list of the given kind, ordered by the
// supplied comparator. The comparator must form a strict weak ordering; it
// is shared, never copied, and must outlive the list.
func NewListWith(kind Kind, cmp compare.Comparator[any]) *List {
	return &List{
		kind: kind,
		cmp:  cmp,
	}
}

// FromValues builds a list of the given kind by inserting every value in
// turn. Values of the wrong kind are skipped and reported together in the
// returned error; the list still contains every value that passed the kind
// guard.
func FromValues(kind Kind, values ...any) (*List, error) {
	list := NewList(kind)

	var errs errors.Collection
	for _, value := range values {
		errs.Add(list.Insert(value))
	}

	return list, errs.GetError()
}

// naturalFor returns the default comparator for the given kind.
func naturalFor(kind Kind) compare.Func[any] {
	if kind == KindString {
		return wrap[string](compare.Natural[string]())
	}

	return wrap[int](compare.Natural[int]())
}

// wrap adapts a typed comparator to the list's dynamic value representation.
// The kind guard runs before any comparison, so the assertions cannot fail.
func wrap[T Element](cmp compare.Comparator[T]) compare.Func[any] {
	return func(a, b any) int {
		return cmp.Compare(a.(T), b.(T))
	}
}
