package compare

import (
	"cmp"
	"reflect"
	"strings"
)

// Types orders two types. Identical types return 0 and nil sorts first.
// When a embeds b, directly or through other embedded structs, the result
// is the embedding depth as a positive number; when b embeds a it is the
// negated depth. Types embedding each other through pointers use the
// shorter path, and equal paths fall back to TypeNames. A concrete type implementing interface b is one step away
// from it (1, or -1 the other way around). Unrelated types are ordered by
// TypeNames.
//
// Example:
//
//	type Base struct{}
//	type Mid struct{ Base }
//	type Leaf struct{ *Mid }
//
//	compare.Types(reflect.TypeFor[Leaf](), reflect.TypeFor[Base]()) // 2
//	compare.Types(reflect.TypeFor[Base](), reflect.TypeFor[Mid]())  // -1
func Types(a, b reflect.Type) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a == b:
		return 0
	}

	down, up := embedDepth(a, b), embedDepth(b, a)

	switch {
	case down > 0 && (up == 0 || down < up):
		return down
	case up > 0 && (down == 0 || up < down):
		return -up
	case down > 0:
		return TypeNames(a, b)
	}

	aImplB := b.Kind() == reflect.Interface && a.Implements(b)
	bImplA := a.Kind() == reflect.Interface && b.Implements(a)

	switch {
	case aImplB && !bImplA:
		return 1
	case bImplA && !aImplB:
		return -1
	default:
		return TypeNames(a, b)
	}
}

// TypeNames orders two types by package path and name, falling back to
// their kinds. It only returns 0 for types that cannot be told apart that way.
func TypeNames(a, b reflect.Type) int {
	if r := strings.Compare(qualifiedName(a), qualifiedName(b)); r != 0 {
		return r
	}

	return cmp.Compare(a.Kind(), b.Kind())
}

func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + ":" + t.String()
}

// embedDepth returns how many embedding steps separate derived from base,
// or 0 when base is not embedded in derived.
func embedDepth(derived, base reflect.Type) int {
	type step struct {
		typ   reflect.Type
		depth int
	}

	target := deref(base)
	queue := []step{{typ: deref(derived)}}
	visited := map[reflect.Type]bool{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.typ.Kind() != reflect.Struct || visited[cur.typ] {
			continue
		}

		visited[cur.typ] = true

		for i := range cur.typ.NumField() {
			field := cur.typ.Field(i)
			if !field.Anonymous {
				continue
			}

			ft := deref(field.Type)
			if ft == target {
				return cur.depth + 1
			}

			queue = append(queue, step{typ: ft, depth: cur.depth + 1})
		}
	}

	return 0
}

func deref(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}
