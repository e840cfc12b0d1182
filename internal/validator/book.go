package validator

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// ISBNRX matches a bare ISBN-10 or ISBN-13 digit string. Check digits are
// not verified.
var ISBNRX = regexp.MustCompile(`^(?:\d{10}|\d{13})$`)

// Bounds for publishedYear. The upper bound is relative to the current year.
const (
	MinPublishedYear       = 1000
	PublishedYearLookahead = 1
)

// IsValidISBN reports whether value is 10 or 13 decimal digits once hyphens
// and whitespace are removed. Empty input is invalid.
func IsValidISBN(value string) bool {
	if value == "" {
		return false
	}
	clean := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
	return Matches(clean, ISBNRX)
}

// MaxPublishedYear is the latest year accepted at time now.
func MaxPublishedYear(now time.Time) int {
	return now.Year() + PublishedYearLookahead
}

// ValidPublishedYear checks a decoded JSON value against the year rule: it
// must be a whole number within [MinPublishedYear, MaxPublishedYear(now)].
// Strings, booleans and fractional numbers are rejected.
func ValidPublishedYear(value any, now time.Time) (int, bool) {
	var f float64
	switch n := value.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < MinPublishedYear || f > float64(MaxPublishedYear(now)) {
		return 0, false
	}
	return int(f), true
}
