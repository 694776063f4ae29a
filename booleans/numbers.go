package booleans

import (
	"time"
)

// Number is any built-in numeric type, including named ones such as time.Duration.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ToNumber maps true to 1 and false to 0.
func ToNumber[N Number](b bool) N {
	if b {
		return 1
	}

	return 0
}

// ToNumberOr is ToNumber for a nullable value, returning def for nil.
func ToNumberOr[N Number](b *bool, def N) N {
	if b == nil {
		return def
	}

	return ToNumber[N](*b)
}

// ToNumberObject is ToNumber for a nullable value, returning nil for nil.
func ToNumberObject[N Number](b *bool) *N {
	if b == nil {
		return nil
	}

	n := ToNumber[N](*b)

	return &n
}

// ToNumberMapped returns trueVal, falseVal or nullVal depending on b.
func ToNumberMapped[N Number](b *bool, trueVal, falseVal, nullVal N) N {
	switch {
	case b == nil:
		return nullVal
	case *b:
		return trueVal
	default:
		return falseVal
	}
}

// Fixed-type shorthands for ToNumber, ToNumberOr and ToNumberObject.

func ToInt(b bool) int             { return ToNumber[int](b) }
func ToIntOr(b *bool, def int) int { return ToNumberOr(b, def) }
func ToIntObject(b *bool) *int     { return ToNumberObject[int](b) }

func ToInt8(b bool) int8              { return ToNumber[int8](b) }
func ToInt8Or(b *bool, def int8) int8 { return ToNumberOr(b, def) }

func ToInt16(b bool) int16               { return ToNumber[int16](b) }
func ToInt16Or(b *bool, def int16) int16 { return ToNumberOr(b, def) }

func ToInt32(b bool) int32               { return ToNumber[int32](b) }
func ToInt32Or(b *bool, def int32) int32 { return ToNumberOr(b, def) }

func ToInt64(b bool) int64               { return ToNumber[int64](b) }
func ToInt64Or(b *bool, def int64) int64 { return ToNumberOr(b, def) }
func ToInt64Object(b *bool) *int64       { return ToNumberObject[int64](b) }

func ToUint(b bool) uint              { return ToNumber[uint](b) }
func ToUintOr(b *bool, def uint) uint { return ToNumberOr(b, def) }

func ToByte(b bool) byte              { return ToNumber[byte](b) }
func ToByteOr(b *bool, def byte) byte { return ToNumberOr(b, def) }
func ToByteObject(b *bool) *byte      { return ToNumberObject[byte](b) }

func ToFloat32(b bool) float32                 { return ToNumber[float32](b) }
func ToFloat32Or(b *bool, def float32) float32 { return ToNumberOr(b, def) }

func ToFloat64(b bool) float64                 { return ToNumber[float64](b) }
func ToFloat64Or(b *bool, def float64) float64 { return ToNumberOr(b, def) }
func ToFloat64Object(b *bool) *float64         { return ToNumberObject[float64](b) }

// ToIntMapped returns trueVal, falseVal or nullVal depending on b.
func ToIntMapped(b *bool, trueVal, falseVal, nullVal int) int {
	return ToNumberMapped(b, trueVal, falseVal, nullVal)
}

// ToDuration maps true to one nanosecond and false to zero.
func ToDuration(b bool) time.Duration {
	return ToNumber[time.Duration](b)
}
