package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Run("chains transforms in order", func(t *testing.T) {
		result := sanitizer.Apply("  HELLO  ", sanitizer.Trim, sanitizer.ToLower)
		assert.Equal(t, "hello", result)
	})

	t.Run("no transforms returns value unchanged", func(t *testing.T) {
		assert.Equal(t, "as-is", sanitizer.Apply("as-is"))
	})
}

func TestURLDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "decodes percent encoding",
			input:    "hello%20world",
			expected: "hello world",
		},
		{
			name:     "decodes plus as space",
			input:    "hello+world",
			expected: "hello world",
		},
		{
			name:     "preserves plain text",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "keeps original on invalid encoding",
			input:    "100%",
			expected: "100%",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.URLDecode(tt.input))
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes simple tags",
			input:    "<b>bold</b> text",
			expected: "bold text",
		},
		{
			name:     "removes script tags keeping content",
			input:    "<script>alert(1)</script>",
			expected: "alert(1)",
		},
		{
			name:     "removes tags with attributes",
			input:    `<a href="http://x.com">link</a>`,
			expected: "link",
		},
		{
			name:     "leaves tagless text alone",
			input:    "plain text",
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses runs of spaces",
			input:    "a   b    c",
			expected: "a b c",
		},
		{
			name:     "collapses tabs and newlines",
			input:    "a\t\nb",
			expected: "a b",
		},
		{
			name:     "trims the result",
			input:    "  a b  ",
			expected: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.CollapseWhitespace(tt.input))
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps a normal address",
			input:    "john.doe@example.com",
			expected: "john.doe@example.com",
		},
		{
			name:     "strips angle brackets and spaces",
			input:    " <john@example.com> ",
			expected: "john@example.com",
		},
		{
			name:     "collapses repeated at signs",
			input:    "john@@example.com",
			expected: "john@example.com",
		},
		{
			name:     "removes disallowed characters",
			input:    "jo(hn)@exa mple.com",
			expected: "john@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SanitizeEmail(tt.input))
		})
	}
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps a normal url",
			input:    "https://example.com/path?q=1",
			expected: "https://example.com/path?q=1",
		},
		{
			name:     "removes whitespace inside",
			input:    "https://exa mple.com",
			expected: "https://example.com",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  example.com  ",
			expected: "example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SanitizeURL(tt.input))
		})
	}
}
