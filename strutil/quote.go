// Package strutil contains string helpers, chiefly escape-aware quoting
// with configurable escape and delimiter characters.
package strutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/commons/errors"
)

const (
	DefaultEscape = '\\'
	DefaultQuote  = '"'
)

// Quote wraps s in double quotes, escaping backslashes and double quotes
// with a backslash.
//
// Example:
//
//	strutil.Quote(`say "hi"`) // "say \"hi\""
func Quote(s string) string {
	return QuoteWith(s, DefaultEscape, DefaultQuote, DefaultQuote)
}

// QuoteWith wraps s between open and closing, prefixing every occurrence of
// escape and of closing in s with escape. The escape and closing characters
// may be the same, which gives SQL-style doubling:
//
//	strutil.QuoteWith("it's", '\'', '\'', '\'') // 'it''s'
//
// Bytes of s that are not valid UTF-8 are copied through unchanged.
func QuoteWith(s string, escape, open, closing rune) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2*utf8.UTFMax)
	sb.WriteRune(open)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		if isRune(r, size) && (r == escape || r == closing) {
			sb.WriteRune(escape)
		}

		sb.WriteString(s[i : i+size])

		i += size
	}

	sb.WriteRune(closing)

	return sb.String()
}

// IsQuoted reports whether s starts with open and ends with closing, as two
// distinct characters.
func IsQuoted(s string, open, closing rune) bool {
	_, _, ok := delimiters(s, open, closing)

	return ok
}

// delimiters returns the byte widths of the opening and closing characters
// of s when s is quoted with them.
func delimiters(s string, open, closing rune) (int, int, bool) {
	first, n := utf8.DecodeRuneInString(s)
	last, m := utf8.DecodeLastRuneInString(s)

	if n == 0 || n+m > len(s) || !isRune(first, n) || !isRune(last, m) {
		return 0, 0, false
	}

	return n, m, first == open && last == closing
}

// isRune reports whether a decoded rune came from valid UTF-8 rather than
// standing in for an invalid byte.
func isRune(r rune, size int) bool {
	return r != utf8.RuneError || size > 1
}

// Unquote reverses Quote.
func Unquote(s string) (string, error) {
	return UnquoteWith(s, DefaultEscape, DefaultQuote, DefaultQuote)
}

// UnquoteWith reverses QuoteWith. It fails with errors.ErrNotQuoted when s
// is not delimited by open and closing or contains an unescaped closing
// character, and with errors.ErrBadEscape when the body ends in a lone
// escape character.
func UnquoteWith(s string, escape, open, closing rune) (string, error) {
	n, m, ok := delimiters(s, open, closing)
	if !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrNotQuoted, s)
	}

	body := s[n : len(s)-m]

	var sb strings.Builder

	sb.Grow(len(body))

	escaped := false

	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		valid := isRune(r, size)

		switch {
		case escaped:
			escaped = false
		case valid && r == escape:
			escaped = true
			i += size

			continue
		case valid && r == closing:
			return "", fmt.Errorf("%w: unescaped %q at offset %d", errors.ErrNotQuoted, closing, i+n)
		}

		sb.WriteString(body[i : i+size])

		i += size
	}

	if escaped {
		return "", fmt.Errorf("%w: %q", errors.ErrBadEscape, s)
	}

	return sb.String(), nil
}
