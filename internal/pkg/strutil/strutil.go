// Package strutil holds small string helpers shared by the parsers and the
// HTTP layer.
package strutil

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ConvertToInt parses s as a base 10 int and returns 0 when it is not a number.
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// StripAccents removes combining marks so that "CÉDULA" and "CEDULA" compare equal.
// Ñ is folded to N as well.
func StripAccents(s string) string {
	// transformers keep state and are not safe for concurrent use
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// FoldUpper upper-cases s and strips its accents.
func FoldUpper(s string) string {
	return strings.ToUpper(StripAccents(s))
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// OnlyDigits drops every rune of s that is not an ASCII digit.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
