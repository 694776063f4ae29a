package booleans

import (
	"fmt"
	"strings"

	"github.com/amp-labs/commons/errors"
)

// ToRune maps true to '1' and false to '0'.
func ToRune(b bool) rune {
	if b {
		return '1'
	}

	return '0'
}

// ToRuneOr is ToRune for a nullable value, returning def for nil.
func ToRuneOr(b *bool, def rune) rune {
	if b == nil {
		return def
	}

	return ToRune(*b)
}

// ToString returns trueStr, falseStr or nullStr depending on b.
func ToString(b *bool, trueStr, falseStr, nullStr string) string {
	switch {
	case b == nil:
		return nullStr
	case *b:
		return trueStr
	default:
		return falseStr
	}
}

// ToStringOr renders b as "true" or "false", or returns def for nil.
func ToStringOr(b *bool, def string) string {
	return ToString(b, "true", "false", def)
}

// ToStringTrueFalse renders b as "true" or "false"; nil renders as "".
func ToStringTrueFalse(b *bool) string {
	return ToString(b, "true", "false", "")
}

// ToStringOnOff renders b as "on" or "off"; nil renders as "".
func ToStringOnOff(b *bool) string {
	return ToString(b, "on", "off", "")
}

// ToStringYesNo renders b as "yes" or "no"; nil renders as "".
func ToStringYesNo(b *bool) string {
	return ToString(b, "yes", "no", "")
}

// Parse reads the usual spellings of a boolean, ignoring case and
// surrounding space: true/false, t/f, yes/no, y/n, on/off and 1/0. Blank
// input parses to nil. Anything else fails with errors.ErrWrongType.
func Parse(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil //nolint:nilnil
	case "true", "t", "yes", "y", "on", "1":
		return Of(true), nil
	case "false", "f", "no", "n", "off", "0":
		return Of(false), nil
	default:
		return nil, fmt.Errorf("%w: %q is not a boolean", errors.ErrWrongType, s)
	}
}

// ParseBool is Parse for callers that need a plain bool; blank input is an error.
func ParseBool(s string) (bool, error) {
	b, err := Parse(s)
	if err != nil {
		return false, err
	}

	if b == nil {
		return false, fmt.Errorf("%w: empty string is not a boolean", errors.ErrWrongType)
	}

	return *b, nil
}
