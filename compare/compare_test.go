package compare

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type labeled struct {
	name  string
	point *point
	tags  []string
}

type node struct {
	Value int
	Next  *node
}

func TestCompare_Nil(t *testing.T) {
	t.Parallel()

	var (
		nilPtr   *int
		nilSlice []int
		nilMap   map[string]int
	)

	tests := []struct {
		name     string
		a, b     any
		expected int
	}{
		{name: "untyped nils", a: nil, b: nil, expected: 0},
		{name: "nil before int", a: nil, b: 0, expected: -1},
		{name: "int after nil", a: 0, b: nil, expected: 1},
		{name: "nil pointer equals nil", a: nilPtr, b: nil, expected: 0},
		{name: "nil slice before empty slice", a: nilSlice, b: []int{}, expected: -1},
		{name: "nil map before empty map", a: nilMap, b: map[string]int{}, expected: -1},
		{name: "nil before empty string", a: nil, b: "", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestCompare_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     any
		expected int
	}{
		{name: "equal ints", a: 42, b: 42, expected: 0},
		{name: "smaller int", a: 1, b: 2, expected: -1},
		{name: "larger int", a: 3, b: 2, expected: 1},
		{name: "negative int against uint", a: int8(-1), b: uint64(0), expected: -1},
		{name: "large uint against int", a: uint64(math.MaxUint64), b: int64(math.MaxInt64), expected: 1},
		{name: "int against float", a: 2, b: 2.5, expected: -1},
		{name: "float against int", a: 3.5, b: 3, expected: 1},
		{name: "strings", a: "apple", b: "banana", expected: -1},
		{name: "equal strings", a: "same", b: "same", expected: 0},
		{name: "bools", a: false, b: true, expected: -1},
		{name: "runes", a: 'a', b: 'b', expected: -1},
		{name: "complex by real part", a: complex(1, 5), b: complex(2, 0), expected: -1},
		{name: "complex by imaginary part", a: complex(1, 5), b: complex(1, 2), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestCompare_Floats(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	negZero := math.Copysign(0, -1)

	assert.Equal(t, 0, Compare(nan, nan))
	assert.Equal(t, 1, Compare(nan, math.Inf(1)))
	assert.Equal(t, -1, Compare(math.Inf(1), nan))
	assert.Equal(t, -1, Compare(math.Inf(-1), -math.MaxFloat64))
	assert.Equal(t, -1, Compare(negZero, 0.0))
	assert.Equal(t, 1, Compare(0.0, negZero))
	assert.Equal(t, 0, Compare(float32(1.5), float32(1.5)))
}

func TestCompare_Epsilon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     any
		epsilon  float64
		expected int
	}{
		{name: "within epsilon", a: 1.0, b: 1.0005, epsilon: 0.001, expected: 0},
		{name: "outside epsilon", a: 1.0, b: 1.01, epsilon: 0.001, expected: -1},
		{name: "difference equal to epsilon is not tolerated", a: 1.0, b: 1.5, epsilon: 0.5, expected: -1},
		{name: "signed zeros within epsilon", a: math.Copysign(0, -1), b: 0.0, epsilon: 1e-9, expected: 0},
		{name: "slices within epsilon", a: []float64{1, 2}, b: []float64{1.0001, 1.9999}, epsilon: 0.001, expected: 0},
		{name: "nested within epsilon", a: [][]float32{{1}}, b: [][]float32{{1.00001}}, epsilon: 0.001, expected: 0},
		{name: "nan within any epsilon", a: math.NaN(), b: math.NaN(), epsilon: 0.1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b, WithEpsilon(tt.epsilon)))
			assert.Equal(t, -tt.expected, Compare(tt.b, tt.a, WithEpsilon(tt.epsilon)))
		})
	}
}

func TestCompare_Sequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     any
		expected int
	}{
		{name: "shorter equal prefix sorts first", a: []int{1, 2}, b: []int{1, 2, 3}, expected: -1},
		{name: "element decides before length", a: []int{1, 3}, b: []int{1, 2, 3}, expected: 1},
		{name: "equal slices", a: []string{"a", "b"}, b: []string{"a", "b"}, expected: 0},
		{name: "arrays", a: [3]int{1, 2, 3}, b: [3]int{1, 2, 4}, expected: -1},
		{name: "byte slices", a: []byte("abc"), b: []byte("abd"), expected: -1},
		{name: "multi dimensional", a: [][]int{{1, 2}, {3}}, b: [][]int{{1, 2}, {3, 0}}, expected: -1},
		{name: "three dimensional", a: [][][]int{{{1}}, {{2}}}, b: [][][]int{{{1}}, {{1}}}, expected: 1},
		{name: "boxed elements", a: []*int{ptr(1), nil}, b: []*int{ptr(1), ptr(0)}, expected: -1},
		{name: "mixed interface elements", a: []any{1, "x"}, b: []any{1, "y"}, expected: -1},
		{name: "empty slices", a: []int{}, b: []int{}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.expected, Compare(tt.b, tt.a))
		})
	}
}

func TestCompare_Maps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Compare(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}))
	assert.Equal(t, -1, Compare(map[string]int{"a": 1}, map[string]int{"a": 2}))
	assert.Equal(t, -1, Compare(map[string]int{"a": 1}, map[string]int{"a": 1, "b": 0}))
	assert.Equal(t, 1, Compare(map[string]int{"c": 1}, map[string]int{"a": 1, "b": 0}))
}

func TestCompare_MapKeys(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	x, y := 1, 1

	tests := []struct {
		name     string
		a, b     any
		expected int
	}{
		{name: "nan keys with different values", a: map[float64]int{nan: 1}, b: map[float64]int{nan: 2}, expected: -1},
		{name: "nan keys with equal values", a: map[float64]int{nan: 1}, b: map[float64]int{nan: 1}, expected: 0},
		{name: "repeated nan keys", a: map[float64]int{nan: 2, math.NaN(): 1}, b: map[float64]int{nan: 1, math.NaN(): 3}, expected: -1},
		{name: "signed zero keys", a: map[float64]int{math.Copysign(0, -1): 1}, b: map[float64]int{0: 1}, expected: -1},
		{name: "pointer keys with equal pointees", a: map[*int]int{&x: 1}, b: map[*int]int{&y: 1}, expected: 0},
		{name: "pointer keys with different values", a: map[*int]int{&x: 1}, b: map[*int]int{&y: 2}, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.expected, Compare(tt.b, tt.a))
		})
	}
}

func TestSortedEntries(t *testing.T) {
	t.Parallel()

	entries := SortedEntries(reflect.ValueOf(map[string]int{"b": 2, "a": 1, "c": 0}))

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key.String())
	}

	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, int64(1), entries[0].Value.Int())
}

func TestCompare_Structs(t *testing.T) {
	t.Parallel()

	a := labeled{name: "a", point: &point{X: 1, Y: 2}, tags: []string{"x"}}
	b := labeled{name: "a", point: &point{X: 1, Y: 3}, tags: []string{"x"}}
	c := labeled{name: "a", point: &point{X: 1, Y: 2}, tags: []string{"x"}}

	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, c))
	assert.Equal(t, 0, Compare(&a, &c))
	assert.Equal(t, -1, Compare(point{X: 1, Y: 9}, point{X: 2, Y: 0}))
}

func TestCompare_Cycles(t *testing.T) {
	t.Parallel()

	a := &node{Value: 1}
	a.Next = a

	b := &node{Value: 1}
	b.Next = b

	c := &node{Value: 2}
	c.Next = c

	assert.Equal(t, 0, Compare(a, b))
	assert.Equal(t, -1, Compare(a, c))

	selfA := make([]any, 2)
	selfA[0], selfA[1] = 1, selfA
	selfB := make([]any, 2)
	selfB[0], selfB[1] = 1, selfB

	assert.Equal(t, 0, Compare(selfA, selfB))
}

func TestCompare_DifferentTypes(t *testing.T) {
	t.Parallel()

	type celsius float64

	pairs := [][2]any{
		{1, int64(1)},
		{[]int{}, []int64{}},
		{1.0, celsius(1)},
		{"1", 1},
		{[]any{1}, []any{int8(1)}},
	}

	for _, p := range pairs {
		r := Compare(p[0], p[1])

		assert.NotEqual(t, 0, r, "%T vs %T", p[0], p[1])
		assert.Equal(t, -r, Compare(p[1], p[0]), "%T vs %T", p[0], p[1])
	}
}

func TestCompare_Options(t *testing.T) {
	t.Parallel()

	t.Run("fold case", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, CompareFold("Hello", "hELLO"))
		assert.Equal(t, 0, CompareFold('A', 'a'))
		assert.Equal(t, 0, CompareFold([]string{"Straße"}, []string{"STRASSE"}))
		assert.Equal(t, -1, CompareFold("apple", "BANANA"))
		assert.Equal(t, 1, Compare("apple", "BANANA"))
	})

	t.Run("natural strings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, Compare("file10", "file2"))
		assert.Equal(t, 1, Compare("file10", "file2", WithNaturalStrings()))
		assert.Equal(t, -1, Compare("file2", "file10", WithNaturalStrings()))
		assert.Equal(t, 0, Compare("file2", "file2", WithNaturalStrings()))
	})

	t.Run("comparator", func(t *testing.T) {
		t.Parallel()

		byLength := WithComparator(func(a, b string) int { return len(a) - len(b) })

		assert.Equal(t, 1, Compare("bb", "a", byLength))
		assert.Equal(t, 0, Compare("ab", "zz", byLength))
		assert.Equal(t, 1, Compare([]string{"x", "bbb"}, []string{"y", "cc"}, byLength))
		assert.Equal(t, -1, Compare(1, 2, byLength))
	})

	t.Run("comparator on struct type", func(t *testing.T) {
		t.Parallel()

		byY := WithComparator(func(a, b point) int { return a.Y - b.Y })

		assert.Equal(t, 1, Compare(point{X: 0, Y: 5}, point{X: 9, Y: 1}, byY))
	})
}

func TestCompare_Properties(t *testing.T) {
	t.Parallel()

	values := []any{
		nil, 0, -1, 1, uint(7), 3.5, math.NaN(), math.Inf(-1), "", "a", "B",
		true, false, []int{1, 2}, []int{1, 2, 3}, []int{}, [][]string{{"a"}},
		map[string]int{"a": 1}, point{X: 1}, &point{Y: 1}, []any{nil, 1},
	}

	for i, x := range values {
		assert.Equal(t, 0, Compare(x, x), "reflexive for %d (%v)", i, x)

		if x != nil {
			assert.Negative(t, Compare(nil, x), "nil first for %d (%v)", i, x)
		}

		for j, y := range values {
			r := Compare(x, y)

			assert.Contains(t, []int{-1, 0, 1}, r)
			assert.Equal(t, -r, Compare(y, x), "antisymmetric for %d and %d", i, j)
		}
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		ptr *strings.Builder
		fn  func()
		ch  chan int
	)

	assert.True(t, isNilAny(nil))
	assert.True(t, isNilAny(ptr))
	assert.True(t, isNilAny(fn))
	assert.True(t, isNilAny(ch))
	assert.False(t, isNilAny(0))
	assert.False(t, isNilAny(""))
	assert.False(t, isNilAny([]int{}))
}

func isNilAny(v any) bool {
	return IsNil(reflect.ValueOf(v))
}

func ptr[T any](v T) *T {
	return &v
}
