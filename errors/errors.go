// Package errors defines the error values shared across the module,
// along with a small utility for accumulating multiple errors.
package errors

import "errors"

var (
	// ErrTypeMismatch is returned when a value's runtime kind disagrees with
	// the element kind a list was constructed with, or when two lists of
	// different kinds are merged. Operations fail with this error before any
	// mutation takes place.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrEmptyList is returned by accessors and removals that require at
	// least one element (First, Last, RemoveFirst, RemoveLast) when the list
	// has none.
	ErrEmptyList = errors.New("empty list")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It is used by bulk constructors that validate every input value and want
// to report all violations at once rather than stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there is only
// one, or a joined error (using errors.Join) if there are several.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
