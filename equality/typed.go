package equality

import (
	"math"
	"reflect"

	"github.com/amp-labs/commons/internal/numeric"
	"golang.org/x/text/cases"
)

// Pointers reports whether two possibly-nil pointers hold equal values.
// Floats are compared bit for bit, like Equal.
func Pointers[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return same(*a, *b)
}

// Slices reports whether two slices have equal elements. A nil slice only
// equals another nil slice.
func Slices[T comparable](a, b []T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !same(a[i], b[i]) {
			return false
		}
	}

	return true
}

// Floats is bit-exact float equality where every NaN equals every other NaN.
func Floats[F ~float32 | ~float64](a, b F) bool {
	return numeric.FloatBitsEqual(float64(a), float64(b))
}

// FloatsWithin reports whether a and b differ by strictly less than epsilon.
// NaN only equals NaN, and equal infinities are equal.
func FloatsWithin[F ~float32 | ~float64](a, b, epsilon F) bool {
	x, y := float64(a), float64(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}

	return x == y || math.Abs(x-y) < float64(epsilon)
}

// Runes compares two runes, optionally ignoring case.
func Runes(a, b rune, foldCase bool) bool {
	if a == b {
		return true
	}

	if !foldCase {
		return false
	}

	folder := cases.Fold()

	return folder.String(string(a)) == folder.String(string(b))
}

// Strings compares two possibly-nil strings, optionally ignoring case.
func Strings(a, b *string, foldCase bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if *a == *b {
		return true
	}

	if !foldCase {
		return false
	}

	folder := cases.Fold()

	return folder.String(*a) == folder.String(*b)
}

func same[T comparable](a, b T) bool {
	va := reflect.ValueOf(a)

	switch k := va.Kind(); {
	case numeric.IsFloat(k):
		return numeric.FloatBitsEqual(va.Float(), reflect.ValueOf(b).Float())
	case numeric.IsComplex(k):
		ca, cb := va.Complex(), reflect.ValueOf(b).Complex()

		return numeric.FloatBitsEqual(real(ca), real(cb)) && numeric.FloatBitsEqual(imag(ca), imag(cb))
	default:
		return a == b
	}
}
