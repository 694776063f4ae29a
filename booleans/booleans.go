// Package booleans converts between bool, nullable *bool and the numeric,
// textual, temporal and arbitrary-precision representations of truth.
//
// true maps to 1, "true", "on" or "yes" and false to 0, "false", "off" or
// "no". A nil *bool maps either to nil, to a caller-supplied default (the
// ...Or variants) or to a fixed per-type default documented on each
// function. Nothing in this package panics on nil input.
package booleans

import (
	"github.com/amp-labs/commons/compare"
)

// Of returns a pointer to b. It is the inverse of Value: Value(Of(b)) == b.
func Of(b bool) *bool {
	return &b
}

// Value dereferences b, treating nil as false.
func Value(b *bool) bool {
	return ValueOr(b, false)
}

// ValueOr dereferences b, or returns def when b is nil.
func ValueOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}

	return *b
}

// IsTrue reports whether b is non-nil and true.
func IsTrue(b *bool) bool {
	return b != nil && *b
}

// IsNotTrue reports whether b is nil or false.
func IsNotTrue(b *bool) bool {
	return !IsTrue(b)
}

// IsFalse reports whether b is non-nil and false.
func IsFalse(b *bool) bool {
	return b != nil && !*b
}

// IsNotFalse reports whether b is nil or true.
func IsNotFalse(b *bool) bool {
	return !IsFalse(b)
}

// Negate returns a pointer to the negation of b, or nil when b is nil.
func Negate(b *bool) *bool {
	if b == nil {
		return nil
	}

	return Of(!*b)
}

// Compare orders false before true.
func Compare(a, b bool) int {
	return compare.Bools(a, b)
}
