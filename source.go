package inputkit

import (
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/upload"
)

// Source is the raw input mapping the pipeline consumes. Values are plain
// strings, lists of strings, or uploaded-file records. How the mapping was
// produced (query string, form body, JSON, tests) is not this package's
// concern; RequestSource builds one from an *http.Request as a convenience.
type Source map[string]any

// present reports whether a raw value counts as supplied: non-nil and
// non-blank, or for lists at least one non-blank element, or for files an
// actually submitted upload.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case []string:
		for _, s := range t {
			if strings.TrimSpace(s) != "" {
				return true
			}
		}
		return false
	case []any:
		for _, item := range t {
			if present(item) {
				return true
			}
		}
		return false
	case *upload.File:
		return !t.IsMissing()
	}
	return true
}

// valueList normalizes a raw value into its ordered elements, dropping
// blank entries from lists. isList reports whether the original shape was a
// list, so that single values round-trip as scalars in the data bag.
func valueList(v any) (values []any, isList bool) {
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			if strings.TrimSpace(s) == "" {
				continue
			}
			values = append(values, s)
		}
		return values, true
	case []any:
		for _, item := range t {
			if !present(item) {
				continue
			}
			values = append(values, item)
		}
		return values, true
	default:
		return []any{v}, false
	}
}
