package compare

import (
	"reflect"

	"github.com/amp-labs/commons/internal/numeric"
)

// Option tunes how Compare orders values.
type Option func(*config)

type pairFunc func(a, b reflect.Value) (int, bool)

type config struct {
	epsilon     float64
	comparators []pairFunc
	natural     bool
	foldCase    bool
}

func newConfig(opts []Option) config {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithEpsilon makes floating point values whose absolute difference is
// strictly less than epsilon compare as equal. Non-positive values disable
// the tolerance.
func WithEpsilon(epsilon float64) Option {
	return func(c *config) {
		c.epsilon = epsilon
	}
}

// WithComparator registers fn for every pair of non-nil values that are
// both of type T (or, when T is an interface, both implement it). The
// comparator takes precedence over natural ordering and over the built-in
// rules, at any depth. Its result is normalized to -1, 0 or 1. Comparators
// are tried in registration order.
//
// Example:
//
//	byLen := compare.WithComparator(func(a, b string) int { return len(a) - len(b) })
//	compare.Compare([]string{"bb"}, []string{"a"}, byLen) // 1
func WithComparator[T any](fn func(a, b T) int) Option {
	return func(c *config) {
		c.comparators = append(c.comparators, func(a, b reflect.Value) (int, bool) {
			if !a.CanInterface() || !b.CanInterface() {
				return 0, false
			}

			x, ok := a.Interface().(T)
			if !ok {
				return 0, false
			}

			y, ok := b.Interface().(T)
			if !ok {
				return 0, false
			}

			return numeric.Sign(fn(x, y)), true
		})
	}
}

// WithNaturalStrings orders strings naturally, so that embedded digit runs
// compare by numeric value ("file2" < "file10").
func WithNaturalStrings() Option {
	return func(c *config) {
		c.natural = true
	}
}

// WithFoldCase compares strings and runes (int32 values) after Unicode case folding.
func WithFoldCase() Option {
	return func(c *config) {
		c.foldCase = true
	}
}
