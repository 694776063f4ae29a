// Package compare orders arbitrary Go values. Compare walks primitives,
// slices, arrays, maps, pointers and structs recursively and returns -1, 0
// or 1, with nil sorting before everything else. Types with a natural
// ordering (an Equal, Compare or Cmp method, or sortable.Sortable) are ordered by
// it, and callers may supply their own comparators and a float tolerance.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
// Compare and equality.Equal treat values whose Equals reports true as
// equal. Compare orders the rest with a LessThan(T) bool method when the
// type has one, and structurally otherwise.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
