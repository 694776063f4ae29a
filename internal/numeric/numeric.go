// Package numeric holds the number handling shared by compare and equality:
// kind classification, a total order for floats, and exact comparison
// across integer, unsigned and floating point kinds.
package numeric

import (
	"math"
	"math/big"
	"reflect"
)

// IsInt reports whether k is a signed integer kind.
func IsInt(k reflect.Kind) bool {
	switch k { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// IsUint reports whether k is an unsigned integer kind.
func IsUint(k reflect.Kind) bool {
	switch k { //nolint:exhaustive
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k is a floating point kind.
func IsFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// IsComplex reports whether k is a complex kind.
func IsComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

// IsNumber reports whether k is any numeric kind.
func IsNumber(k reflect.Kind) bool {
	return IsInt(k) || IsUint(k) || IsFloat(k) || IsComplex(k)
}

// Sign maps any integer onto -1, 0 or 1.
func Sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	default:
		return 0
	}
}

// CompareFloats orders floats totally: -Inf < ... < -0 < +0 < ... < +Inf < NaN,
// and NaN equals NaN. When epsilon is positive, values whose absolute
// difference is strictly less than epsilon are equal.
func CompareFloats(x, y, epsilon float64) int {
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)

	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	}

	if epsilon > 0 && math.Abs(x-y) < epsilon {
		return 0
	}

	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	// x == y, which only leaves signed zeros to tell apart.
	xNeg, yNeg := math.Signbit(x), math.Signbit(y)

	switch {
	case xNeg && !yNeg:
		return -1
	case !xNeg && yNeg:
		return 1
	default:
		return 0
	}
}

// FloatBitsEqual is bit-exact float equality, except that every NaN equals
// every other NaN. It agrees with CompareFloats(x, y, 0) == 0.
func FloatBitsEqual(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}

	return math.Float64bits(x) == math.Float64bits(y)
}

// Compare orders two numeric reflect values of any (possibly different)
// numeric kinds by value. Integers are compared exactly; integers against
// floats go through big.Float so no precision is lost. Complex values are
// ordered by real part, then imaginary part; a real number has an
// imaginary part of zero. The second result is false when either value is
// not numeric.
func Compare(a, b reflect.Value, epsilon float64) (int, bool) {
	ka, kb := a.Kind(), b.Kind()
	if !IsNumber(ka) || !IsNumber(kb) {
		return 0, false
	}

	if IsComplex(ka) || IsComplex(kb) {
		ra, ia := complexParts(a)
		rb, ib := complexParts(b)

		if c := CompareFloats(ra, rb, epsilon); c != 0 {
			return c, true
		}

		return CompareFloats(ia, ib, epsilon), true
	}

	switch {
	case IsInt(ka) && IsInt(kb):
		return compareInt64(a.Int(), b.Int()), true
	case IsUint(ka) && IsUint(kb):
		return compareUint64(a.Uint(), b.Uint()), true
	case IsInt(ka) && IsUint(kb):
		return compareIntUint(a.Int(), b.Uint()), true
	case IsUint(ka) && IsInt(kb):
		return -compareIntUint(b.Int(), a.Uint()), true
	case IsFloat(ka) && IsFloat(kb):
		return CompareFloats(a.Float(), b.Float(), epsilon), true
	case IsFloat(ka):
		return -compareIntegerFloat(b, a.Float(), epsilon), true
	default:
		return compareIntegerFloat(a, b.Float(), epsilon), true
	}
}

func complexParts(v reflect.Value) (float64, float64) {
	k := v.Kind()

	switch {
	case IsComplex(k):
		c := v.Complex()

		return real(c), imag(c)
	case IsFloat(k):
		return v.Float(), 0
	case IsInt(k):
		return float64(v.Int()), 0
	default:
		return float64(v.Uint()), 0
	}
}

func compareInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func compareUint64(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func compareIntUint(x int64, y uint64) int {
	if x < 0 {
		return -1
	}

	return compareUint64(uint64(x), y)
}

// compareIntegerFloat compares an integer-kinded value with a float.
func compareIntegerFloat(integer reflect.Value, f, epsilon float64) int {
	if math.IsNaN(f) {
		return -1
	}

	bi := new(big.Float)
	if IsInt(integer.Kind()) {
		bi.SetInt64(integer.Int())
	} else {
		bi.SetUint64(integer.Uint())
	}

	if epsilon > 0 && !math.IsInf(f, 0) {
		approx, _ := bi.Float64()
		if math.Abs(approx-f) < epsilon {
			return 0
		}
	}

	return bi.Cmp(new(big.Float).SetFloat64(f))
}
