// Package sortedlist implements a singly-linked list that keeps its elements
// sorted at all times under an injected three-way comparator.
//
// A list is specialized at construction to hold values of exactly one
// element kind (int or string, never mixed). Every operation that takes a
// value verifies the kind before touching the list and fails with
// [github.com/amp-labs/sortedlist/errors.ErrTypeMismatch] on disagreement,
// leaving the list unchanged.
//
// All operations are worst-case linear; sortedness is exploited for O(1)
// prepend/append fast paths, early-exit scans, and linear merges. The list
// performs no locking and is not safe for concurrent use; callers that share
// a list across goroutines must provide their own mutual exclusion.
package sortedlist

import (
	"fmt"
	"iter"

	"github.com/amp-labs/sortedlist/assert"
	"github.com/amp-labs/sortedlist/compare"
	"github.com/amp-labs/sortedlist/errors"
	"github.com/amp-labs/sortedlist/optional"
)

// node is a single link cell. The value never changes once the node is
// created; next is rewritten as the chain is edited around it.
type node struct {
	value any
	next  *node
}

// List is a sorted singly-linked list over dynamically kind-checked values.
// The zero value is not usable; construct with NewList or NewListWith.
//
// Reading head to tail always yields a non-decreasing sequence under the
// list's comparator. Equal values keep their insertion order.
type List struct {
	head *node
	tail *node
	size int
	kind Kind
	cmp  compare.Comparator[any]
}

// guard rejects values whose runtime kind differs from the list's element
// kind. It runs before every mutation and lookup, so comparator code only
// ever sees values of the declared kind.
func (l *List) guard(value any) error {
	switch l.kind {
	case KindString:
		_, err := assert.Type[string](value)

		return err
	default:
		_, err := assert.Type[int](value)

		return err
	}
}

// Insert places the value at its sorted position. Among equal values the new
// one lands after the existing run (except at the head, where it is
// prepended) and before the first strictly greater value. Values already in
// ascending order take an O(1) append fast path.
func (l *List) Insert(value any) error {
	if err := l.guard(value); err != nil {
		return err
	}

	fresh := &node{value: value}

	switch {
	case l.head == nil:
		l.head = fresh
		l.tail = fresh
	case l.cmp.Compare(value, l.head.value) <= 0:
		fresh.next = l.head
		l.head = fresh
	case l.cmp.Compare(value, l.tail.value) >= 0:
		l.tail.next = fresh
		l.tail = fresh
	default:
		// The value sorts strictly between head and tail, so the insertion
		// point can never move the tail.
		curr := l.head
		for curr.next != nil && l.cmp.Compare(value, curr.next.value) > 0 {
			curr = curr.next
		}

		fresh.next = curr.next
		curr.next = fresh
	}

	l.size++

	return nil
}

// unlink removes curr from the chain, where prev is curr's predecessor
// (nil when curr is the head).
func (l *List) unlink(prev, curr *node) {
	if prev == nil {
		l.head = curr.next
	} else {
		prev.next = curr.next
	}

	if curr == l.tail {
		l.tail = prev
	}

	curr.next = nil
	l.size--
}

// Remove deletes the first value that compares equal to the target.
// Returns true if a value was removed. The scan stops as soon as it reaches
// a strictly greater value; sortedness guarantees no match beyond it.
func (l *List) Remove(value any) (bool, error) {
	if err := l.guard(value); err != nil {
		return false, err
	}

	var prev *node

	for curr := l.head; curr != nil; curr = curr.next {
		order := l.cmp.Compare(value, curr.value)
		if order < 0 {
			break
		}

		if order == 0 {
			l.unlink(prev, curr)

			return true, nil
		}

		prev = curr
	}

	return false, nil
}

// RemoveAll deletes every value that compares equal to the target and
// returns how many were removed. Like Remove, it never scans past the first
// strictly greater value.
func (l *List) RemoveAll(value any) (int, error) {
	if err := l.guard(value); err != nil {
		return 0, err
	}

	removed := 0

	var prev *node

	curr := l.head
	for curr != nil {
		order := l.cmp.Compare(value, curr.value)
		if order < 0 {
			break
		}

		if order == 0 {
			next := curr.next
			l.unlink(prev, curr)

			curr = next
			removed++

			continue
		}

		prev = curr
		curr = curr.next
	}

	return removed, nil
}

// RemoveFirst pops the smallest value.
// Fails with errors.ErrEmptyList when the list has no elements.
func (l *List) RemoveFirst() (any, error) {
	if l.head == nil {
		return nil, fmt.Errorf("%w: cannot remove the first element", errors.ErrEmptyList)
	}

	value := l.head.value
	l.unlink(nil, l.head)

	return value, nil
}

// RemoveLast pops the largest value.
// Fails with errors.ErrEmptyList when the list has no elements.
func (l *List) RemoveLast() (any, error) {
	if l.head == nil {
		return nil, fmt.Errorf("%w: cannot remove the last element", errors.ErrEmptyList)
	}

	value := l.tail.value

	var prev *node
	for curr := l.head; curr != l.tail; curr = curr.next {
		prev = curr
	}

	l.unlink(prev, l.tail)

	return value, nil
}

// Clear drops all elements.
func (l *List) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Contains reports whether a value comparing equal to the target is present.
// The scan stops at the first strictly greater value.
func (l *List) Contains(value any) (bool, error) {
	if err := l.guard(value); err != nil {
		return false, err
	}

	for curr := l.head; curr != nil; curr = curr.next {
		order := l.cmp.Compare(value, curr.value)
		if order < 0 {
			break
		}

		if order == 0 {
			return true, nil
		}
	}

	return false, nil
}

// CountOf returns how many values compare equal to the target.
// The scan stops at the first strictly greater value.
func (l *List) CountOf(value any) (int, error) {
	if err := l.guard(value); err != nil {
		return 0, err
	}

	count := 0

	for curr := l.head; curr != nil; curr = curr.next {
		order := l.cmp.Compare(value, curr.value)
		if order < 0 {
			break
		}

		if order == 0 {
			count++
		}
	}

	return count, nil
}

// First returns the smallest value.
// Fails with errors.ErrEmptyList when the list has no elements; use
// PeekFirst for the non-failing variant.
func (l *List) First() (any, error) {
	if l.head == nil {
		return nil, fmt.Errorf("%w: no first element", errors.ErrEmptyList)
	}

	return l.head.value, nil
}

// Last returns the largest value.
// Fails with errors.ErrEmptyList when the list has no elements; use
// PeekLast for the non-failing variant.
func (l *List) Last() (any, error) {
	if l.tail == nil {
		return nil, fmt.Errorf("%w: no last element", errors.ErrEmptyList)
	}

	return l.tail.value, nil
}

// PeekFirst returns the smallest value, or None on an empty list.
func (l *List) PeekFirst() optional.Value[any] {
	if l.head == nil {
		return optional.None[any]()
	}

	return optional.Some(l.head.value)
}

// PeekLast returns the largest value, or None on an empty list.
func (l *List) PeekLast() optional.Value[any] {
	if l.tail == nil {
		return optional.None[any]()
	}

	return optional.Some(l.tail.value)
}

// IsEmpty reports whether the list has no elements.
func (l *List) IsEmpty() bool {
	return l.size == 0
}

// Size returns the number of elements in the list.
func (l *List) Size() int {
	return l.size
}

// Kind returns the element kind the list was constructed with.
func (l *List) Kind() Kind {
	return l.kind
}

// Entries returns all values as a slice in sorted order, or nil when the
// list is empty.
func (l *List) Entries() []any {
	if l.size == 0 {
		return nil
	}

	entries := make([]any, 0, l.size)

	for value := range l.Seq() {
		entries = append(entries, value)
	}

	return entries
}

// Seq returns an iterator over the values in sorted order. Each call starts
// a fresh traversal from the then-current head. The sequence is a live view
// of the list: mutating the list while iterating is undefined behavior.
func (l *List) Seq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for curr := l.head; curr != nil; curr = curr.next {
			if !yield(curr.value) {
				return
			}
		}
	}
}

// pushBack appends a fresh node carrying value. Only callers that already
// know the value sorts at or after the current tail may use it.
func (l *List) pushBack(value any) {
	fresh := &node{value: value}

	if l.tail == nil {
		l.head = fresh
	} else {
		l.tail.next = fresh
	}

	l.tail = fresh
	l.size++
}

// Merge combines this list with another of the same kind into a brand-new
// list carrying freshly allocated nodes; neither operand is modified. Equal
// values from the receiver land before those from the other list, and the
// result inherits the receiver's comparator.
// Fails with errors.ErrTypeMismatch when the element kinds differ.
// Time complexity: O(n + m).
func (l *List) Merge(other *List) (*List, error) {
	if other.kind != l.kind {
		return nil, fmt.Errorf("%w: cannot merge a %s list into a %s list",
			errors.ErrTypeMismatch, other.kind, l.kind)
	}

	out := NewListWith(l.kind, l.cmp)

	left, right := l.head, other.head
	for left != nil && right != nil {
		if l.cmp.Compare(left.value, right.value) <= 0 {
			out.pushBack(left.value)
			left = left.next
		} else {
			out.pushBack(right.value)
			right = right.next
		}
	}

	for ; left != nil; left = left.next {
		out.pushBack(left.value)
	}

	for ; right != nil; right = right.next {
		out.pushBack(right.value)
	}

	return out, nil
}
