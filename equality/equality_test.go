package equality

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/amp-labs/commons/compare"
	"github.com/stretchr/testify/assert"
)

type account struct {
	ID      int
	Owner   *string
	balance float64
	tags    map[string][]int
}

type ring struct {
	Value int
	Next  *ring
}

type caseless string

func (c caseless) Equals(other caseless) bool {
	return EqualFold(string(c), string(other))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	var (
		nilBool  *bool
		nilSlice []int
	)

	owner := "ann"
	otherOwner := "ann"

	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{name: "untyped nils", a: nil, b: nil, expected: true},
		{name: "nil pointer equals nil", a: nilBool, b: nil, expected: true},
		{name: "nil against value", a: nil, b: false, expected: false},
		{name: "nil slice against empty slice", a: nilSlice, b: []int{}, expected: false},
		{name: "equal ints", a: 5, b: 5, expected: true},
		{name: "different int kinds", a: 5, b: int64(5), expected: false},
		{name: "equal strings", a: "go", b: "go", expected: true},
		{name: "case differs", a: "Go", b: "go", expected: false},
		{name: "nan equals nan", a: math.NaN(), b: math.NaN(), expected: true},
		{name: "signed zeros differ", a: 0.0, b: math.Copysign(0, -1), expected: false},
		{name: "float32 nan", a: float32(math.NaN()), b: float32(math.NaN()), expected: true},
		{name: "equal slices", a: []int{1, 2}, b: []int{1, 2}, expected: true},
		{name: "different lengths", a: []int{1, 2}, b: []int{1, 2, 3}, expected: false},
		{name: "different element types", a: []int{1, 2}, b: []int64{1, 2}, expected: false},
		{name: "slice against array", a: []int{1}, b: [1]int{1}, expected: false},
		{name: "multi dimensional", a: [][]float64{{1, math.NaN()}}, b: [][]float64{{1, math.NaN()}}, expected: true},
		{name: "boxed elements", a: []*int{ptr(1), nil}, b: []*int{ptr(1), nil}, expected: true},
		{name: "byte slices", a: []byte("abc"), b: []byte("abc"), expected: true},
		{name: "maps", a: map[string]int{"a": 1}, b: map[string]int{"a": 1}, expected: true},
		{name: "maps with other values", a: map[string]int{"a": 1}, b: map[string]int{"a": 2}, expected: false},
		{name: "maps with other keys", a: map[string]int{"a": 1}, b: map[string]int{"b": 1}, expected: false},
		{name: "maps with nan keys", a: map[float64]int{math.NaN(): 1}, b: map[float64]int{math.NaN(): 1}, expected: true},
		{name: "maps with nan keys and other values", a: map[float64]int{math.NaN(): 1}, b: map[float64]int{math.NaN(): 2}, expected: false},
		{name: "maps with signed zero keys", a: map[float64]int{0: 1}, b: map[float64]int{math.Copysign(0, -1): 1}, expected: false},
		{name: "maps with equal pointee keys", a: map[*int]int{ptr(1): 1}, b: map[*int]int{ptr(1): 1}, expected: true},
		{
			name:     "structs with unexported fields",
			a:        account{ID: 1, Owner: &owner, balance: 2.5, tags: map[string][]int{"x": {1}}},
			b:        account{ID: 1, Owner: &otherOwner, balance: 2.5, tags: map[string][]int{"x": {1}}},
			expected: true,
		},
		{
			name:     "structs differing in unexported field",
			a:        account{ID: 1, balance: 2.5},
			b:        account{ID: 1, balance: 2.6},
			expected: false,
		},
		{name: "complex", a: complex(1, 2), b: complex(1, 2), expected: true},
		{name: "equal method", a: caseless("ABC"), b: caseless("abc"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
			assert.Equal(t, tt.expected, Equal(tt.b, tt.a))
		})
	}
}

func TestEqual_Methods(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.True(t, Equal(now, now.In(time.UTC)))
	assert.False(t, Equal(now, now.Add(time.Nanosecond)))
	assert.True(t, Equal(big.NewInt(42), big.NewInt(42)))
	assert.False(t, Equal(big.NewInt(42), big.NewInt(43)))
}

func TestEqual_Cycles(t *testing.T) {
	t.Parallel()

	a := &ring{Value: 1}
	a.Next = &ring{Value: 2, Next: a}

	b := &ring{Value: 1}
	b.Next = &ring{Value: 2, Next: b}

	c := &ring{Value: 1}
	c.Next = &ring{Value: 3, Next: c}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqualFold(t *testing.T) {
	t.Parallel()

	assert.True(t, EqualFold("Hello", "hELLO"))
	assert.True(t, EqualFold("Straße", "STRASSE"))
	assert.True(t, EqualFold('Σ', 'σ'))
	assert.True(t, EqualFold([]string{"A", "b"}, []string{"a", "B"}))
	assert.True(t, EqualFold(map[int]string{1: "X"}, map[int]string{1: "x"}))
	assert.False(t, EqualFold("a", "b"))
	assert.False(t, EqualFold('a', "a"))
	assert.True(t, EqualFold(nil, nil))
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     any
		epsilon  float64
		expected bool
	}{
		{name: "int and float", a: 1, b: 1.0, expected: true},
		{name: "uint and int", a: uint8(200), b: 200, expected: true},
		{name: "within epsilon", a: 0.1 + 0.2, b: 0.3, epsilon: 1e-9, expected: true},
		{name: "outside epsilon", a: 1.0, b: 1.1, epsilon: 0.01, expected: false},
		{name: "difference equal to epsilon", a: 1.0, b: 1.5, epsilon: 0.5, expected: false},
		{name: "signed zeros", a: 0.0, b: math.Copysign(0, -1), expected: true},
		{name: "nan", a: math.NaN(), b: math.NaN(), epsilon: 1, expected: true},
		{name: "numeric slices of different kinds", a: []int{1, 2}, b: []float64{1, 2.0000001}, epsilon: 1e-3, expected: true},
		{name: "slice and array", a: []int{1, 2}, b: [2]int{1, 2}, expected: true},
		{name: "maps with converted keys", a: map[int]float64{1: 0.5}, b: map[int64]float32{1: 0.5}, expected: true},
		{name: "maps with inconvertible keys", a: map[int]int{65: 1}, b: map[string]int{"A": 1}, expected: false},
		{name: "strings stay strict", a: "a", b: "A", expected: false},
		{name: "different lengths", a: []int{1}, b: []float64{1, 2}, expected: false},
		{name: "nil against zero", a: nil, b: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ValueEqual(tt.a, tt.b, tt.epsilon))
			assert.Equal(t, tt.expected, ValueEqual(tt.b, tt.a, tt.epsilon))
		})
	}
}

func TestValueEqual_Reflexive(t *testing.T) {
	t.Parallel()

	for _, v := range sampleValues() {
		assert.True(t, ValueEqual(v, v, 0), "%#v", v)
		assert.True(t, ValueEqual(v, v, 0.5), "%#v", v)
	}
}

func TestEqual_AgreesWithCompare(t *testing.T) {
	t.Parallel()

	values := sampleValues()

	for i, a := range values {
		for j, b := range values {
			assert.Equal(t, compare.Compare(a, b) == 0, Equal(a, b), "values %d and %d", i, j)
		}
	}
}

func sampleValues() []any {
	var nilPtr *int

	x, y := 1, 1
	nan := math.NaN()

	return []any{
		caseless("A"), caseless("a"), caseless("b"),
		map[*int]int{&x: 1}, map[*int]int{&y: 1}, map[*int]int{&y: 2},
		map[float64]int{0: 1}, map[float64]int{math.Copysign(0, -1): 1},
		map[float64]int{nan: 1}, map[float64]int{math.NaN(): 1}, map[float64]int{nan: 2},
		map[float64]int{nan: 1, math.NaN(): 2},
		nil, nilPtr, 0, 1, int64(1), uint(1), 1.0, float32(1), math.NaN(),
		math.Copysign(0, -1), 0.0, "", "a", "A", true, false,
		[]int{}, []int{1}, []int64{1}, [1]int{1}, [][]int{{1}},
		map[string]int{"a": 1}, map[string]int{"a": 2},
		account{ID: 1}, &account{ID: 1}, []any{1, "x"}, []any{int8(1), "x"},
		big.NewInt(5), complex(1, 1),
	}
}

func ptr[T any](v T) *T {
	return &v
}
