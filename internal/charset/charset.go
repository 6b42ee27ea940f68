// Package charset holds the character-class helpers shared by the
// identifier families.
package charset

import "strings"

const (
	// Underscore separates words in database identifiers.
	Underscore = '_'
	// Hyphen separates words in instance identifiers.
	Hyphen = '-'

	trailingSeparators = "_-"
)

// IsLower reports whether r is a lowercase ASCII letter.
func IsLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsAlphanumeric reports whether r is a lowercase ASCII letter or a digit.
func IsAlphanumeric(r rune) bool {
	return IsLower(r) || IsDigit(r)
}

// Normalize lower-cases value and replaces every rune outside
// [a-z0-9<separator>] with separator.
func Normalize(value string, separator rune) string {
	lower := strings.ToLower(value)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if IsAlphanumeric(r) || r == separator {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(separator)
	}
	return b.String()
}

// HasContent reports whether value contains at least one lowercase letter or digit.
func HasContent(value string) bool {
	return strings.IndexFunc(value, IsAlphanumeric) >= 0
}

// TrimTrailingSeparators strips any run of '_' and '-' from the end of value.
func TrimTrailingSeparators(value string) string {
	return strings.TrimRight(value, trailingSeparators)
}
