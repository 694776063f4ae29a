// Package errors holds the sentinel errors shared by the commons packages,
// plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	ErrWrongType = errors.New("wrong type")

	// ErrNilArgument is returned when a function that does not accept nil
	// input (for example a nil element in a list of *bool) receives one.
	ErrNilArgument = errors.New("nil argument")

	// ErrEmptyArgument is returned when a variadic function needs at least one value.
	ErrEmptyArgument = errors.New("empty argument")

	ErrNotQuoted  = errors.New("string is not quoted")
	ErrBadEscape  = errors.New("dangling escape character")
	ErrOutOfRange = errors.New("value out of range")

	// ErrBadArgument is returned by the command line tool for arguments it
	// cannot parse or a wrong number of them.
	ErrBadArgument = errors.New("bad argument")
)

// Is reports whether any error in err's tree matches target.
// It is a passthrough so callers don't need to import both this package and
// the standard library one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
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
