package sortable

import (
	"github.com/amp-labs/commons/compare"
	"golang.org/x/text/cases"
)

// Int is a sortable wrapper type for the built-in int type.
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

func (b Byte) Equals(other Byte) bool {
	return b == other
}

func (b Byte) LessThan(other Byte) bool {
	return b < other
}

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// Fold is a string that sorts and compares after Unicode case folding,
// so Fold("Straße") equals Fold("STRASSE").
type Fold string

var _ Sortable[Fold] = (*Fold)(nil)

func (f Fold) Equals(other Fold) bool {
	return f.folded() == other.folded()
}

func (f Fold) LessThan(other Fold) bool {
	return f.folded() < other.folded()
}

func (f Fold) folded() string {
	return cases.Fold().String(string(f))
}

// Float64 is a sortable float with a total order: NaN equals NaN and sorts
// last, and -0 sorts before +0.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

func (f Float64) Equals(other Float64) bool {
	return compare.Floats(f, other, 0) == 0
}

func (f Float64) LessThan(other Float64) bool {
	return compare.Floats(f, other, 0) < 0
}

// Bool sorts false before true.
type Bool bool

var _ Sortable[Bool] = (*Bool)(nil)

func (b Bool) Equals(other Bool) bool {
	return b == other
}

func (b Bool) LessThan(other Bool) bool {
	return compare.Bools(bool(b), bool(other)) < 0
}
