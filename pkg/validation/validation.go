package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxCityLength bounds the city names accepted by the transports
const MaxCityLength = 100

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsValidCity reports whether s, once trimmed, is a usable city name:
// non-blank, at most MaxCityLength characters and free of control characters.
func IsValidCity(s string) bool {
	trimmed, ok := TrimAndValidate(s)
	if !ok || utf8.RuneCountInString(trimmed) > MaxCityLength {
		return false
	}
	return strings.IndexFunc(trimmed, unicode.IsControl) < 0
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
