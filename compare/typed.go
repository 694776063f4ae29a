package compare

import (
	"cmp"
	"reflect"

	"github.com/amp-labs/commons/internal/numeric"
)

// Ordered compares two possibly-nil pointers to ordered values. A nil
// pointer sorts first. Floats follow the same total order as Compare.
func Ordered[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return ordered(*a, *b)
	}
}

// Slices compares two slices element by element, then by length. A nil
// slice sorts before an empty one.
func Slices[T cmp.Ordered](a, b []T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	for i := range min(len(a), len(b)) {
		if r := ordered(a[i], b[i]); r != 0 {
			return r
		}
	}

	return cmp.Compare(len(a), len(b))
}

// Floats compares two floats, treating values closer than epsilon as equal.
// NaN sorts after +Inf and equals itself.
func Floats[F ~float32 | ~float64](a, b, epsilon F) int {
	return numeric.CompareFloats(float64(a), float64(b), float64(epsilon))
}

// Bools orders false before true.
func Bools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// ordered is cmp.Compare except for floats, where signed zeros are told
// apart and NaN sorts last.
func ordered[T cmp.Ordered](a, b T) int {
	va := reflect.ValueOf(a)
	if numeric.IsFloat(va.Kind()) {
		return numeric.CompareFloats(va.Float(), reflect.ValueOf(b).Float(), 0)
	}

	return cmp.Compare(a, b)
}
