package inputkit

import (
	"fmt"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
	"github.com/dmitrymomot/inputkit/pkg/upload"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

// filterValue normalizes one raw string and coerces it for the field kind.
// Returns the coerced value and the filtered string form; the two differ
// only when coercion applied. Coercion is best-effort: a non-numeric string
// declared as int stays a string so the validator can report the format
// error instead.
func filterValue(s string, f Filters, kind validator.Kind) (any, string) {
	if enabled(f.Decode) {
		s = sanitizer.URLDecode(s)
	}
	if enabled(f.Trim) {
		s = sanitizer.Trim(s)
	}
	if enabled(f.StripTags) {
		s = sanitizer.StripTags(s)
	}
	if f.ToUpper {
		s = sanitizer.ToUpper(s)
	} else if f.ToLower {
		s = sanitizer.ToLower(s)
	}

	switch kind {
	case validator.KindEmail:
		s = sanitizer.SanitizeEmail(s)
	case validator.KindURL:
		s = sanitizer.SanitizeURL(s)
	case validator.KindInt, validator.KindPInt, validator.KindNInt:
		if v, ok := sanitizer.ToInt(s); ok {
			return v, s
		}
	case validator.KindFloat, validator.KindPFloat, validator.KindNFloat:
		if v, ok := sanitizer.ToFloat(s); ok {
			return v, s
		}
	case validator.KindBool:
		return sanitizer.ToBool(s), s
	}
	return s, s
}

// filterAny routes a raw element through the string filters, passing
// uploaded files and already-typed values along untouched.
func filterAny(v any, f Filters, kind validator.Kind) (any, string) {
	switch t := v.(type) {
	case string:
		return filterValue(t, f, kind)
	case *upload.File:
		return t, t.Name
	default:
		return v, fmt.Sprint(v)
	}
}
