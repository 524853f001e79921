package sanitizer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	integerRegex = regexp.MustCompile(`^[-+]?\d+$`)
	decimalRegex = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)$`)

	// Values that web forms commonly send to mean "false".
	falsyRegex = regexp.MustCompile(`(?i)^(false|off|0|nil|null|no|undefined)$`)
)

// IsInteger reports whether s is a plain base-10 integer literal.
func IsInteger(s string) bool {
	return integerRegex.MatchString(s)
}

// IsDecimal reports whether s is a base-10 number, integer or fractional.
func IsDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// ToInt parses s into an int64 when it is a numeric integer string.
// Non-numeric input returns ok=false and the caller is expected to keep the
// original string so the validator can report the format error.
func ToInt(s string) (int64, bool) {
	if !IsInteger(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToFloat parses s into a float64 under the same numeric guard as ToInt.
func ToFloat(s string) (float64, bool) {
	if !IsDecimal(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToBool interprets s the way checkbox and toggle inputs behave: the empty
// string and the well-known falsy literals are false, anything else is true.
func ToBool(s string) bool {
	if s == "" {
		return false
	}
	return !falsyRegex.MatchString(s)
}
