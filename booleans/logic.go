package booleans

import (
	"fmt"

	"github.com/amp-labs/commons/errors"
)

// And reports whether every value is true. It is true for no values.
func And(bs ...bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}

	return true
}

// Or reports whether any value is true. It is false for no values.
func Or(bs ...bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}

	return false
}

// Xor reports whether an odd number of values are true.
func Xor(bs ...bool) bool {
	odd := false

	for _, b := range bs {
		odd = odd != b
	}

	return odd
}

// AndObjects is And over nullable values. Unlike And, it requires at least
// one value and rejects nil elements.
func AndObjects(bs ...*bool) (*bool, error) {
	values, err := unwrapAll(bs)
	if err != nil {
		return nil, err
	}

	return Of(And(values...)), nil
}

// OrObjects is Or over nullable values, with the same rules as AndObjects.
func OrObjects(bs ...*bool) (*bool, error) {
	values, err := unwrapAll(bs)
	if err != nil {
		return nil, err
	}

	return Of(Or(values...)), nil
}

// XorObjects is Xor over nullable values, with the same rules as AndObjects.
func XorObjects(bs ...*bool) (*bool, error) {
	values, err := unwrapAll(bs)
	if err != nil {
		return nil, err
	}

	return Of(Xor(values...)), nil
}

func unwrapAll(bs []*bool) ([]bool, error) {
	if len(bs) == 0 {
		return nil, fmt.Errorf("%w: no values given", errors.ErrEmptyArgument)
	}

	values := make([]bool, len(bs))

	for i, b := range bs {
		if b == nil {
			return nil, fmt.Errorf("%w: value %d is nil", errors.ErrNilArgument, i)
		}

		values[i] = *b
	}

	return values, nil
}
