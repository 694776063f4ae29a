package compare

import (
	"bytes"
	"cmp"
	"reflect"
	"slices"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/commons/internal/numeric"
	"golang.org/x/text/cases"
)

// Compare returns -1, 0 or 1 depending on whether a sorts before, together
// with or after b.
//
// Ordering rules, applied recursively:
//   - nil (untyped, or a nil pointer, slice, map, chan, func or interface)
//     sorts before every non-nil value, and all nils are equal.
//   - Comparators registered with WithComparator win over everything else.
//   - reflect.Type values are ordered by Types, which may return distances
//     larger than one.
//   - Values with an Equal(T) bool or Equals(T) bool method reporting true
//     are equal. Otherwise a Compare(T) int or Cmp(T) int method decides,
//     then a LessThan(T) bool method paired with Equal or Equals.
//   - Numbers compare by value across kinds. Floats order -Inf < -0 < +0 <
//     +Inf < NaN and NaN equals NaN.
//   - Strings compare bytewise, bools order false before true.
//   - Slices and arrays compare element by element, then by length.
//   - Maps compare their entries sorted by key, then by size.
//   - Pointers compare their pointees; cycles are treated as equal.
//   - Structs compare field by field in declaration order.
//   - Channels, funcs and unsafe pointers compare by address.
//
// When the rules find two values equal but their dynamic types differ, the
// result is decided by the qualified type names, so Compare(a, b) == 0
// exactly when equality.Equal(a, b).
func Compare(a, b any, opts ...Option) int {
	c := &comparer{cfg: newConfig(opts)}

	return c.compare(reflect.ValueOf(a), reflect.ValueOf(b))
}

// Values is Compare for values already held as reflect.Value, such as
// unexported struct fields that cannot be turned back into interfaces.
func Values(a, b reflect.Value, opts ...Option) int {
	c := &comparer{cfg: newConfig(opts)}

	return c.compare(a, b)
}

// CompareFold is Compare with case-insensitive strings and runes.
func CompareFold(a, b any, opts ...Option) int {
	return Compare(a, b, append(opts, WithFoldCase())...)
}

type visit struct {
	a, b uintptr
	typ  reflect.Type
}

type comparer struct {
	cfg     config
	folder  *cases.Caser
	visited map[visit]struct{}
}

var reflectTypeType = reflect.TypeFor[reflect.Type]()

// IsNil reports whether v is invalid or a nil reference of any kind.
func IsNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

func (c *comparer) compare(a, b reflect.Value) int {
	aNil, bNil := IsNil(a), IsNil(b)

	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	case bNil:
		return 1
	}

	if a.Kind() == reflect.Interface {
		return c.compare(a.Elem(), b)
	}

	if b.Kind() == reflect.Interface {
		return c.compare(a, b.Elem())
	}

	if r := c.compareValues(a, b); r != 0 {
		return r
	}

	if a.Type() != b.Type() {
		return TypeNames(a.Type(), b.Type())
	}

	return 0
}

func (c *comparer) compareValues(a, b reflect.Value) int {
	for _, fn := range c.cfg.comparators {
		if r, ok := fn(a, b); ok {
			return r
		}
	}

	if r, ok := c.natural(a, b); ok {
		return r
	}

	ka, kb := a.Kind(), b.Kind()

	if c.cfg.foldCase && ka == reflect.Int32 && kb == reflect.Int32 {
		return c.compareStrings(string(rune(a.Int())), string(rune(b.Int())))
	}

	if r, ok := numeric.Compare(a, b, c.cfg.epsilon); ok {
		return r
	}

	if ka != kb {
		return TypeNames(a.Type(), b.Type())
	}

	switch ka { //nolint:exhaustive
	case reflect.Bool:
		return Bools(a.Bool(), b.Bool())
	case reflect.String:
		return c.compareStrings(a.String(), b.String())
	case reflect.Slice, reflect.Array:
		return c.compareSequences(a, b)
	case reflect.Map:
		return c.compareMaps(a, b)
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return 0
		}

		return c.guarded(a, b, func() int {
			return c.compare(a.Elem(), b.Elem())
		})
	case reflect.Struct:
		return c.compareStructs(a, b)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return cmp.Compare(a.Pointer(), b.Pointer())
	default:
		return 0
	}
}

// natural applies a type's own ordering when it has one.
func (c *comparer) natural(a, b reflect.Value) (int, bool) {
	if a.Type() != b.Type() || !a.CanInterface() || !b.CanInterface() {
		return 0, false
	}

	if a.Type().Implements(reflectTypeType) {
		ta, _ := a.Interface().(reflect.Type)
		tb, _ := b.Interface().(reflect.Type)

		return Types(ta, tb), true
	}

	equal, hasEqual := callEquals(a, b)
	if equal {
		return 0, true
	}

	for _, name := range []string{"Compare", "Cmp"} {
		if m := a.MethodByName(name); takesSelf(m, b.Type(), reflect.Int) {
			return numeric.Sign(int(m.Call([]reflect.Value{b})[0].Int())), true
		}
	}

	if less := a.MethodByName("LessThan"); hasEqual && takesSelf(less, b.Type(), reflect.Bool) {
		if less.Call([]reflect.Value{b})[0].Bool() {
			return -1, true
		}

		return 1, true
	}

	return 0, false
}

// callEquals calls a's Equal(T) bool or Equals(T) bool method, reporting
// whether one exists.
func callEquals(a, b reflect.Value) (equal, found bool) {
	for _, name := range []string{"Equal", "Equals"} {
		if m := a.MethodByName(name); takesSelf(m, b.Type(), reflect.Bool) {
			return m.Call([]reflect.Value{b})[0].Bool(), true
		}
	}

	return false, false
}

// takesSelf reports whether m is a method of shape func(T) R where R has kind out.
func takesSelf(m reflect.Value, self reflect.Type, out reflect.Kind) bool {
	if !m.IsValid() {
		return false
	}

	mt := m.Type()

	return mt.NumIn() == 1 && mt.In(0) == self && mt.NumOut() == 1 && mt.Out(0).Kind() == out
}

func (c *comparer) compareStrings(x, y string) int {
	if c.cfg.foldCase {
		if c.folder == nil {
			folder := cases.Fold()
			c.folder = &folder
		}

		x, y = c.folder.String(x), c.folder.String(y)
	}

	if c.cfg.natural && x != y {
		switch {
		case natsort.Compare(x, y):
			return -1
		case natsort.Compare(y, x):
			return 1
		}
	}

	return strings.Compare(x, y)
}

func (c *comparer) compareSequences(a, b reflect.Value) int {
	if isByteSlice(a) && isByteSlice(b) {
		return bytes.Compare(a.Bytes(), b.Bytes())
	}

	if a.Kind() != reflect.Slice {
		return c.compareElements(a, b)
	}

	if a.Pointer() == b.Pointer() && a.Len() == b.Len() {
		return 0
	}

	return c.guarded(a, b, func() int {
		return c.compareElements(a, b)
	})
}

func (c *comparer) compareElements(a, b reflect.Value) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		if r := c.compare(a.Index(i), b.Index(i)); r != 0 {
			return r
		}
	}

	return cmp.Compare(a.Len(), b.Len())
}

func isByteSlice(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8
}

func (c *comparer) compareMaps(a, b reflect.Value) int {
	if a.Pointer() == b.Pointer() {
		return 0
	}

	return c.guarded(a, b, func() int {
		return c.compareEntries(a, b)
	})
}

func (c *comparer) compareEntries(a, b reflect.Value) int {
	entriesA, entriesB := c.sortedEntries(a), c.sortedEntries(b)

	n := min(len(entriesA), len(entriesB))
	for i := range n {
		if r := c.compareEntry(entriesA[i], entriesB[i]); r != 0 {
			return r
		}
	}

	return cmp.Compare(len(entriesA), len(entriesB))
}

// MapEntry is one key and value read from a map.
type MapEntry struct {
	Key, Value reflect.Value
}

// SortedEntries returns the entries of map m ordered by key, then by value,
// the way Compare walks them.
func SortedEntries(m reflect.Value, opts ...Option) []MapEntry {
	c := &comparer{cfg: newConfig(opts)}

	return c.sortedEntries(m)
}

func (c *comparer) sortedEntries(m reflect.Value) []MapEntry {
	entries := make([]MapEntry, 0, m.Len())

	iter := m.MapRange()
	for iter.Next() {
		entries = append(entries, MapEntry{Key: iter.Key(), Value: iter.Value()})
	}

	slices.SortFunc(entries, c.compareEntry)

	return entries
}

func (c *comparer) compareEntry(x, y MapEntry) int {
	if r := c.compare(x.Key, y.Key); r != 0 {
		return r
	}

	return c.compare(x.Value, y.Value)
}

func (c *comparer) compareStructs(a, b reflect.Value) int {
	if a.Type() != b.Type() {
		return TypeNames(a.Type(), b.Type())
	}

	for i := range a.NumField() {
		if r := c.compare(a.Field(i), b.Field(i)); r != 0 {
			return r
		}
	}

	return 0
}

// guarded runs fn unless the same pair of references is already being
// compared further up the stack, in which case the cycle counts as equal.
func (c *comparer) guarded(a, b reflect.Value, fn func() int) int {
	if c.visited == nil {
		c.visited = make(map[visit]struct{})
	}

	key := visit{a: a.Pointer(), b: b.Pointer(), typ: a.Type()}
	if _, ok := c.visited[key]; ok {
		return 0
	}

	c.visited[key] = struct{}{}
	defer delete(c.visited, key)

	return fn()
}
