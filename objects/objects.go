// Package objects provides nil-safe helpers for arbitrary values: default
// substitution, identity hashing and display formatting of slices and arrays.
package objects

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/amp-labs/commons/compare"
	"github.com/zeebo/xxh3"
)

// NilString is how nil values are rendered by IdentityString and ArrayString.
const NilString = "<nil>"

// IsNil returns true if the value is a literal nil or a nil pointer, slice,
// map, channel, func or interface.
func IsNil(v any) bool {
	return compare.IsNil(reflect.ValueOf(v))
}

// DefaultIfNil returns v, or def when v is nil.
//
// Example:
//
//	var p *Config
//	objects.DefaultIfNil(p, fallback) // fallback
func DefaultIfNil(v, def any) any {
	if IsNil(v) {
		return def
	}

	return v
}

// FirstNonNil returns the first of vs that is not nil, or nil when there is none.
func FirstNonNil(vs ...any) any {
	for _, v := range vs {
		if !IsNil(v) {
			return v
		}
	}

	return nil
}

// Or dereferences p, or returns def when p is nil.
func Or[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}

// Ref returns a pointer to a copy of v.
func Ref[T any](v T) *T {
	return &v
}

// Deref safely dereferences a pointer. If the pointer is nil it returns the
// zero value of T and false.
func Deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T

		return zero, false
	}

	return *p, true
}

// ToString renders v with fmt, or returns nilStr when v is nil.
func ToString(v any, nilStr string) string {
	if IsNil(v) {
		return nilStr
	}

	return fmt.Sprint(v)
}

// IdentityHash identifies a value without calling any of its methods.
// Pointers, maps, slices, channels and funcs are identified by address, so
// two distinct but equal slices hash differently. Other values have no
// address of their own and are hashed (xxh3) from their type and contents,
// read field by field through reflection. Nil hashes to 0.
func IdentityHash(v any) uint64 {
	rv := reflect.ValueOf(v)
	if compare.IsNil(rv) {
		return 0
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return uint64(rv.Pointer())
	default:
		h := xxh3.New()
		writeIdentity(h, rv)

		return h.Sum64()
	}
}

// writeIdentity feeds the type and contents of v to h through reflection
// alone. References nested inside v contribute their address.
func writeIdentity(h *xxh3.Hasher, v reflect.Value) {
	if !v.IsValid() {
		_, _ = h.WriteString("nil;")

		return
	}

	_, _ = h.WriteString(v.Type().PkgPath() + "." + v.Type().String() + ":")

	switch v.Kind() { //nolint:exhaustive
	case reflect.Bool:
		_, _ = h.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, _ = h.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		_, _ = h.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		_, _ = h.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		_, _ = h.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	case reflect.String:
		_, _ = h.WriteString(strconv.Quote(v.String()))
	case reflect.Array:
		for i := range v.Len() {
			writeIdentity(h, v.Index(i))
		}
	case reflect.Struct:
		for i := range v.NumField() {
			writeIdentity(h, v.Field(i))
		}
	case reflect.Interface:
		writeIdentity(h, v.Elem())
	default:
		_, _ = h.WriteString(strconv.FormatUint(uint64(v.Pointer()), 16))
	}

	_, _ = h.WriteString(";")
}

// IdentityString renders v as "<type>@<identity hash in hex>", ignoring any
// String method the value may have. Nil renders as NilString.
func IdentityString(v any) string {
	if IsNil(v) {
		return NilString
	}

	return fmt.Sprintf("%T@%x", v, IdentityHash(v))
}

// ArrayString renders slices and arrays for display, recursing into nested
// ones: [1, 2, 3], [[1, 2], [3]]. Nil slices and elements render as
// NilString, pointers are dereferenced, and a slice that contains itself
// renders the inner occurrence as [...]. Other values are rendered with %v.
func ArrayString(v any) string {
	var sb strings.Builder

	w := &displayWriter{sb: &sb, active: map[reference]bool{}}
	w.write(reflect.ValueOf(v))

	return sb.String()
}

type reference struct {
	addr uintptr
	typ  reflect.Type
}

type displayWriter struct {
	sb     *strings.Builder
	active map[reference]bool
}

func (w *displayWriter) write(v reflect.Value) {
	if compare.IsNil(v) {
		w.sb.WriteString(NilString)

		return
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Interface:
		w.write(v.Elem())
	case reflect.Pointer:
		w.enter(v, func() { w.write(v.Elem()) })
	case reflect.Slice:
		w.enter(v, func() { w.writeElements(v) })
	case reflect.Array:
		w.writeElements(v)
	default:
		fmt.Fprint(w.sb, v)
	}
}

func (w *displayWriter) writeElements(v reflect.Value) {
	w.sb.WriteByte('[')

	for i := range v.Len() {
		if i > 0 {
			w.sb.WriteString(", ")
		}

		w.write(v.Index(i))
	}

	w.sb.WriteByte(']')
}

// enter guards against reference cycles while rendering v.
func (w *displayWriter) enter(v reflect.Value, fn func()) {
	ref := reference{addr: v.Pointer(), typ: v.Type()}
	if w.active[ref] {
		w.sb.WriteString("[...]")

		return
	}

	w.active[ref] = true
	defer delete(w.active, ref)

	fn()
}
