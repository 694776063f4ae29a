package booleans

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/amp-labs/commons/errors"
	"github.com/amp-labs/commons/internal/numeric"
	"github.com/shopspring/decimal"
)

// FromInt maps zero to false and everything else to true.
func FromInt[N Number](n N) bool {
	return n != 0
}

// FromIntObject is FromInt for a nullable value, returning nil for nil.
func FromIntObject[N Number](n *N) *bool {
	if n == nil {
		return nil
	}

	return Of(FromInt(*n))
}

// FromIntMapped returns true when n equals trueVal and false when it equals
// falseVal. Any other value fails with errors.ErrOutOfRange.
func FromIntMapped(n, trueVal, falseVal int) (bool, error) {
	switch n {
	case trueVal:
		return true, nil
	case falseVal:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %d matches neither %d nor %d", errors.ErrOutOfRange, n, trueVal, falseVal)
	}
}

// ToBigInt maps b to 1 or 0, or nil when b is nil.
func ToBigInt(b *bool) *big.Int {
	if b == nil {
		return nil
	}

	return big.NewInt(ToNumber[int64](*b))
}

// ToBigIntOr is ToBigInt with def substituted for nil.
func ToBigIntOr(b *bool, def *big.Int) *big.Int {
	if b == nil {
		return def
	}

	return ToBigInt(b)
}

// ToDecimal maps b to decimal 1 or 0. A nil b gives an invalid NullDecimal.
func ToDecimal(b *bool) decimal.NullDecimal {
	if b == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(decimal.NewFromInt(ToNumber[int64](*b)))
}

// ToDecimalOr is ToDecimal with def substituted for nil.
func ToDecimalOr(b *bool, def decimal.Decimal) decimal.Decimal {
	if b == nil {
		return def
	}

	return decimal.NewFromInt(ToNumber[int64](*b))
}

// ToTime maps true to one millisecond after the Unix epoch and false to the
// epoch itself, both in UTC. A nil b gives nil.
func ToTime(b *bool) *time.Time {
	if b == nil {
		return nil
	}

	t := time.UnixMilli(ToNumber[int64](*b)).UTC()

	return &t
}

// ToTimeOr is ToTime with def substituted for nil.
func ToTimeOr(b *bool, def time.Time) time.Time {
	if b == nil {
		return def
	}

	return *ToTime(b)
}

// FromAny converts bools, *bool, numbers (non-zero is true), strings (see
// Parse), *big.Int and decimal values into a nullable bool. Nil input
// yields nil. Unsupported types fail with errors.ErrWrongType.
func FromAny(v any) (*bool, error) {
	switch typed := v.(type) {
	case nil:
		return nil, nil //nolint:nilnil
	case bool:
		return Of(typed), nil
	case *bool:
		return typed, nil
	case string:
		return Parse(typed)
	case *big.Int:
		if typed == nil {
			return nil, nil //nolint:nilnil
		}

		return Of(typed.Sign() != 0), nil
	case decimal.Decimal:
		return Of(!typed.IsZero()), nil
	case decimal.NullDecimal:
		if !typed.Valid {
			return nil, nil //nolint:nilnil
		}

		return Of(!typed.Decimal.IsZero()), nil
	}

	rv := reflect.ValueOf(v)

	switch k := rv.Kind(); {
	case numeric.IsInt(k):
		return Of(rv.Int() != 0), nil
	case numeric.IsUint(k):
		return Of(rv.Uint() != 0), nil
	case numeric.IsFloat(k):
		return Of(rv.Float() != 0), nil
	case k == reflect.Bool:
		return Of(rv.Bool()), nil
	case k == reflect.String:
		return Parse(rv.String())
	case k == reflect.Pointer:
		if rv.IsNil() {
			return nil, nil //nolint:nilnil
		}

		return FromAny(rv.Elem().Interface())
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to a boolean", errors.ErrWrongType, v)
	}
}
