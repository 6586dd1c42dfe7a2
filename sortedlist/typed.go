package sortedlist

import (
	"iter"

	"github.com/amp-labs/sortedlist/compare"
	"github.com/amp-labs/sortedlist/optional"
)

// Typed is a statically typed facade over List. The element kind is pinned
// by the type parameter, so kind mismatches are impossible at compile time
// and the methods shed the error returns the dynamic core needs; Insert can
// therefore chain. Merging two Typed lists of the same T can never fail
// either. Like the core, a Typed list is not safe for concurrent use.
type Typed[T Element] struct {
	inner *List
}

// NewTyped creates an empty typed list ordered by the natural ascending
// order of its values.
func NewTyped[T Element]() *Typed[T] {
	return NewTypedWith[T](compare.Natural[T]())
}

// NewTypedWith creates an empty typed list ordered by the supplied
// comparator.
func NewTypedWith[T Element](cmp compare.Comparator[T]) *Typed[T] {
	return &Typed[T]{
		inner: NewListWith(kindFor[T](), wrap[T](cmp)),
	}
}

// NewIntList creates an empty list of ints in natural ascending order.
func NewIntList() *Typed[int] {
	return NewTyped[int]()
}

// NewStringList creates an empty list of strings in natural ascending order.
func NewStringList() *Typed[string] {
	return NewTyped[string]()
}

// FromSlice builds a typed list by inserting every value in turn.
func FromSlice[T Element](values ...T) *Typed[T] {
	list := NewTyped[T]()
	for _, value := range values {
		list.Insert(value)
	}

	return list
}

// FromInts builds a list of ints in natural ascending order.
func FromInts(values ...int) *Typed[int] {
	return FromSlice(values...)
}

// FromStrings builds a list of strings in natural ascending order.
func FromStrings(values ...string) *Typed[string] {
	return FromSlice(values...)
}

// Insert places the value at its sorted position and returns the list to
// support chaining.
func (t *Typed[T]) Insert(value T) *Typed[T] {
	_ = t.inner.Insert(value)

	return t
}

// Remove deletes the first value comparing equal to the target.
// Returns true if a value was removed.
func (t *Typed[T]) Remove(value T) bool {
	found, _ := t.inner.Remove(value)

	return found
}

// RemoveAll deletes every value comparing equal to the target and returns
// how many were removed.
func (t *Typed[T]) RemoveAll(value T) int {
	removed, _ := t.inner.RemoveAll(value)

	return removed
}

// RemoveFirst pops the smallest value.
// Fails with errors.ErrEmptyList when the list has no elements.
func (t *Typed[T]) RemoveFirst() (T, error) {
	value, err := t.inner.RemoveFirst()
	if err != nil {
		var zero T

		return zero, err
	}

	return value.(T), nil
}

// RemoveLast pops the largest value.
// Fails with errors.ErrEmptyList when the list has no elements.
func (t *Typed[T]) RemoveLast() (T, error) {
	value, err := t.inner.RemoveLast()
	if err != nil {
		var zero T

		return zero, err
	}

	return value.(T), nil
}

// Clear drops all elements.
func (t *Typed[T]) Clear() {
	t.inner.Clear()
}

// Contains reports whether a value comparing equal to the target is present.
func (t *Typed[T]) Contains(value T) bool {
	found, _ := t.inner.Contains(value)

	return found
}

// CountOf returns how many values compare equal to the target.
func (t *Typed[T]) CountOf(value T) int {
	count, _ := t.inner.CountOf(value)

	return count
}

// First returns the smallest value.
// Fails with errors.ErrEmptyList when the list has no elements; use
// PeekFirst for the non-failing variant.
func (t *Typed[T]) First() (T, error) {
	value, err := t.inner.First()
	if err != nil {
		var zero T

		return zero, err
	}

	return value.(T), nil
}

// Last returns the largest value.
// Fails with errors.ErrEmptyList when the list has no elements; use
// PeekLast for the non-failing variant.
func (t *Typed[T]) Last() (T, error) {
	value, err := t.inner.Last()
	if err != nil {
		var zero T

		return zero, err
	}

	return value.(T), nil
}

// PeekFirst returns the smallest value, or None on an empty list.
func (t *Typed[T]) PeekFirst() optional.Value[T] {
	return narrow[T](t.inner.PeekFirst())
}

// PeekLast returns the largest value, or None on an empty list.
func (t *Typed[T]) PeekLast() optional.Value[T] {
	return narrow[T](t.inner.PeekLast())
}

// IsEmpty reports whether the list has no elements.
func (t *Typed[T]) IsEmpty() bool {
	return t.inner.IsEmpty()
}

// Size returns the number of elements in the list.
func (t *Typed[T]) Size() int {
	return t.inner.Size()
}

// Kind returns the element kind pinned by the type parameter.
func (t *Typed[T]) Kind() Kind {
	return t.inner.Kind()
}

// Entries returns all values as a slice in sorted order, or nil when the
// list is empty.
func (t *Typed[T]) Entries() []T {
	if t.inner.IsEmpty() {
		return nil
	}

	entries := make([]T, 0, t.inner.Size())

	for value := range t.Seq() {
		entries = append(entries, value)
	}

	return entries
}

// Seq returns an iterator over the values in sorted order. Each call starts
// a fresh traversal; mutating the list while iterating is undefined behavior.
func (t *Typed[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range t.inner.Seq() {
			if !yield(value.(T)) {
				return
			}
		}
	}
}

// Merge combines this list with another into a brand-new list; neither
// operand is modified. Equal values from the receiver land before those from
// the other list, and the result inherits the receiver's comparator.
func (t *Typed[T]) Merge(other *Typed[T]) *Typed[T] {
	// Same T means same kind, so the merge cannot fail.
	merged, _ := t.inner.Merge(other.inner)

	return &Typed[T]{inner: merged}
}

// Dynamic exposes the underlying dynamically checked list. Mutations through
// it are visible to the facade and vice versa.
func (t *Typed[T]) Dynamic() *List {
	return t.inner
}

// String renders the list in the same form as List.String.
func (t *Typed[T]) String() string {
	return t.inner.String()
}

// MarshalJSON encodes the list as a JSON array of its values in sorted order.
func (t *Typed[T]) MarshalJSON() ([]byte, error) {
	return t.inner.MarshalJSON()
}

// narrow converts an optional dynamic value back to its static type.
func narrow[T Element](value optional.Value[any]) optional.Value[T] {
	return optional.Map(value, func(v any) T {
		return v.(T)
	})
}
