package sanitizer

import (
	"net/url"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for performance
var (
	htmlTagRegex      = regexp.MustCompile(`<[^>]*>`)
	emailUnsafeRegex  = regexp.MustCompile("[^a-zA-Z0-9.!#$%&'*+/=?^_`{|}~@\\-\\[\\]]")
	urlUnsafeRegex    = regexp.MustCompile(`[^a-zA-Z0-9$\-_.+!*'(),{}|\\^~\[\]` + "`" + `<>#%";/?:@&=]`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	consecutiveAtSign = regexp.MustCompile(`@+`)
)

// Apply runs a value through a chain of transformations in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// URLDecode reverses percent-encoding and plus-encoded spaces.
// The original string is preserved when it is not valid encoding,
// protecting against data loss on literal percent signs.
func URLDecode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// StripTags removes HTML and XML markup tags, keeping their text content.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// CollapseWhitespace replaces runs of whitespace with a single space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SanitizeEmail removes characters that cannot appear in an email address
// and consolidates repeated @ signs. Invalid addresses are not rejected
// here; format validation happens at the validation stage.
func SanitizeEmail(s string) string {
	s = strings.TrimSpace(s)
	s = emailUnsafeRegex.ReplaceAllString(s, "")
	return consecutiveAtSign.ReplaceAllString(s, "@")
}

// SanitizeURL removes characters that cannot appear in a URL.
// The remaining string may still be an invalid URL; judging that is the
// validator's job.
func SanitizeURL(s string) string {
	s = strings.TrimSpace(s)
	return urlUnsafeRegex.ReplaceAllString(s, "")
}
