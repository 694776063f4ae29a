// Package equality decides structural equality of arbitrary Go values.
//
// Equal is strict: values must share a dynamic type, floats must match bit
// for bit (any NaN equals any other NaN, -0 differs from +0), and slices
// must have the same length. EqualFold relaxes string and rune comparison
// to Unicode case folding. ValueEqual compares by value instead: numbers
// of different kinds are equal when they denote the same quantity, and
// floats within an epsilon of each other are equal.
//
// In every mode nil equals nil (whatever the nil's static type) and nil
// never equals a non-nil value. Equal agrees with compare.Compare:
// Equal(a, b) == (compare.Compare(a, b) == 0).
package equality

import (
	"bytes"
	"reflect"

	"github.com/amp-labs/commons/compare"
	"github.com/amp-labs/commons/internal/numeric"
	"golang.org/x/text/cases"
)

// Equal reports whether a and b are structurally equal.
//
// Example:
//
//	equality.Equal([]int{1, 2}, []int{1, 2})   // true
//	equality.Equal([]int{1, 2}, []int64{1, 2}) // false, element types differ
//	equality.Equal((*bool)(nil), nil)          // true
func Equal(a, b any) bool {
	e := &equaler{}

	return e.equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

// EqualFold is Equal with case-insensitive strings and runes (int32 values).
func EqualFold(a, b any) bool {
	e := &equaler{foldCase: true}

	return e.equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

// ValueEqual reports whether a and b hold the same values. Numbers compare
// by value across kinds, floats closer than epsilon are equal, and
// containers of different static types (say []int and []float64) are
// compared element by element.
//
// Example:
//
//	equality.ValueEqual(1, 1.0, 0)                             // true
//	equality.ValueEqual([]float64{0.1 + 0.2}, []int{0}, 0.5)   // true
func ValueEqual(a, b any, epsilon float64) bool {
	e := &equaler{byValue: true, epsilon: epsilon}

	return e.equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

type visit struct {
	a, b uintptr
	typ  reflect.Type
}

type equaler struct {
	foldCase bool
	byValue  bool
	epsilon  float64

	folder  *cases.Caser
	visited map[visit]struct{}
}

func (e *equaler) equal(a, b reflect.Value) bool {
	aNil, bNil := compare.IsNil(a), compare.IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}

	if a.Kind() == reflect.Interface {
		return e.equal(a.Elem(), b)
	}

	if b.Kind() == reflect.Interface {
		return e.equal(a, b.Elem())
	}

	ka, kb := a.Kind(), b.Kind()

	if e.foldCase && ka == reflect.Int32 && kb == reflect.Int32 {
		return a.Type() == b.Type() && e.equalStrings(string(rune(a.Int())), string(rune(b.Int())))
	}

	if e.byValue && numeric.IsNumber(ka) && numeric.IsNumber(kb) {
		r, _ := numeric.Compare(a, b, e.epsilon)

		return r == 0
	}

	if a.Type() != b.Type() {
		if !e.byValue || !sameShape(ka, kb) {
			return false
		}
	} else if eq, ok := byMethod(a, b); ok {
		return eq
	}

	switch ka { //nolint:exhaustive
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return numeric.FloatBitsEqual(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()

		return numeric.FloatBitsEqual(real(ca), real(cb)) && numeric.FloatBitsEqual(imag(ca), imag(cb))
	case reflect.String:
		return e.equalStrings(a.String(), b.String())
	case reflect.Slice, reflect.Array:
		return e.equalSequences(a, b)
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}

		if a.Pointer() == b.Pointer() {
			return true
		}

		return e.guarded(a, b, func() bool {
			return e.equalEntries(a, b)
		})
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return true
		}

		return e.guarded(a, b, func() bool {
			return e.equal(a.Elem(), b.Elem())
		})
	case reflect.Struct:
		if a.Type() != b.Type() {
			return false
		}

		for i := range a.NumField() {
			if !e.equal(a.Field(i), b.Field(i)) {
				return false
			}
		}

		return true
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	default:
		return false
	}
}

// sameShape reports whether two values of different types may still be
// compared element-wise when comparing by value.
func sameShape(ka, kb reflect.Kind) bool {
	isSeq := func(k reflect.Kind) bool { return k == reflect.Slice || k == reflect.Array }

	return ka == kb || (isSeq(ka) && isSeq(kb))
}

// byMethod uses a type's own equality when it declares one: Equal(T) bool,
// Equals(T) bool, or a Compare/Cmp method returning zero.
func byMethod(a, b reflect.Value) (bool, bool) {
	if !a.CanInterface() || !b.CanInterface() {
		return false, false
	}

	arg := []reflect.Value{b}

	for _, name := range []string{"Equal", "Equals"} {
		if m := a.MethodByName(name); hasShape(m, b.Type(), reflect.Bool) {
			return m.Call(arg)[0].Bool(), true
		}
	}

	for _, name := range []string{"Compare", "Cmp"} {
		if m := a.MethodByName(name); hasShape(m, b.Type(), reflect.Int) {
			return m.Call(arg)[0].Int() == 0, true
		}
	}

	return false, false
}

func hasShape(m reflect.Value, arg reflect.Type, out reflect.Kind) bool {
	if !m.IsValid() {
		return false
	}

	mt := m.Type()

	return mt.NumIn() == 1 && mt.In(0) == arg && mt.NumOut() == 1 && mt.Out(0).Kind() == out
}

func (e *equaler) equalStrings(x, y string) bool {
	if x == y {
		return true
	}

	if !e.foldCase {
		return false
	}

	if e.folder == nil {
		folder := cases.Fold()
		e.folder = &folder
	}

	return e.folder.String(x) == e.folder.String(y)
}

func (e *equaler) equalSequences(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}

	if a.Kind() == reflect.Slice && b.Kind() == reflect.Slice {
		if a.Type() == b.Type() && a.Type().Elem().Kind() == reflect.Uint8 {
			return bytes.Equal(a.Bytes(), b.Bytes())
		}

		if a.Pointer() == b.Pointer() {
			return true
		}

		return e.guarded(a, b, func() bool {
			return e.equalElements(a, b)
		})
	}

	return e.equalElements(a, b)
}

func (e *equaler) equalElements(a, b reflect.Value) bool {
	for i := range a.Len() {
		if !e.equal(a.Index(i), b.Index(i)) {
			return false
		}
	}

	return true
}

// equalEntries pairs the entries of both maps in compare.Compare's key
// order, so keys are matched structurally rather than with ==.
func (e *equaler) equalEntries(a, b reflect.Value) bool {
	var opts []compare.Option
	if e.foldCase {
		opts = append(opts, compare.WithFoldCase())
	}

	entriesA, entriesB := compare.SortedEntries(a, opts...), compare.SortedEntries(b, opts...)

	for i := range entriesA {
		if !e.equal(entriesA[i].Key, entriesB[i].Key) || !e.equal(entriesA[i].Value, entriesB[i].Value) {
			return false
		}
	}

	return true
}

// guarded runs fn unless the same pair is already being compared further up
// the stack, in which case the cycle counts as equal.
func (e *equaler) guarded(a, b reflect.Value, fn func() bool) bool {
	if e.visited == nil {
		e.visited = make(map[visit]struct{})
	}

	key := visit{a: a.Pointer(), b: b.Pointer(), typ: a.Type()}
	if _, ok := e.visited[key]; ok {
		return true
	}

	e.visited[key] = struct{}{}
	defer delete(e.visited, key)

	return fn()
}
