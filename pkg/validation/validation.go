package validation

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	minCJKLength   = 2
	minLatinLength = 3
)

var (
	latinScriptRegex = regexp.MustCompile(`^[A-Za-z\s\-']+$`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// SanitizeCityName keeps CJK ideographs, Latin letters, whitespace, hyphens
// and apostrophes, collapses whitespace and trims. When nothing survives the
// trimmed original is returned.
func SanitizeCityName(input string) string {
	var b strings.Builder
	for _, r := range input {
		if isAllowedCityRune(r) {
			b.WriteRune(r)
		}
	}

	sanitized := strings.TrimSpace(whitespaceRegex.ReplaceAllString(b.String(), " "))
	if sanitized == "" {
		return strings.TrimSpace(input)
	}
	return sanitized
}

func isAllowedCityRune(r rune) bool {
	switch {
	case unicode.Is(unicode.Han, r):
		return true
	case unicode.IsLetter(r) && unicode.Is(unicode.Latin, r):
		return true
	case unicode.IsSpace(r), r == '-', r == '\'':
		return true
	}
	return false
}

// ContainsCJK reports whether s has at least one Han ideograph
func ContainsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// IsLatinScript reports whether s is plain ASCII Latin (or pinyin) text
func IsLatinScript(s string) bool {
	return latinScriptRegex.MatchString(s)
}

// MinCityNameLength is 2 runes for names containing CJK, 3 otherwise
func MinCityNameLength(s string) int {
	if ContainsCJK(s) {
		return minCJKLength
	}
	return minLatinLength
}

// HasMinCityNameLength checks the sanitized name against MinCityNameLength
func HasMinCityNameLength(s string) bool {
	return len([]rune(s)) >= MinCityNameLength(s)
}
