package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

func TestIsInteger(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain digits", input: "42", expected: true},
		{name: "negative", input: "-7", expected: true},
		{name: "explicit plus", input: "+7", expected: true},
		{name: "mixed letters", input: "a22", expected: false},
		{name: "decimal point", input: "1.5", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.IsInteger(tt.input))
		})
	}
}

func TestIsDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "integer form", input: "42", expected: true},
		{name: "fractional", input: "3.14", expected: true},
		{name: "leading dot", input: ".5", expected: true},
		{name: "trailing dot", input: "5.", expected: true},
		{name: "negative fractional", input: "-0.5", expected: true},
		{name: "two dots", input: "1.2.3", expected: false},
		{name: "letters", input: "pi", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.IsDecimal(tt.input))
		})
	}
}

func TestToInt(t *testing.T) {
	t.Run("parses plain integer", func(t *testing.T) {
		v, ok := sanitizer.ToInt("12")
		assert.True(t, ok)
		assert.Equal(t, int64(12), v)
	})

	t.Run("parses signed values", func(t *testing.T) {
		v, ok := sanitizer.ToInt("-3")
		assert.True(t, ok)
		assert.Equal(t, int64(-3), v)

		v, ok = sanitizer.ToInt("+3")
		assert.True(t, ok)
		assert.Equal(t, int64(3), v)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, ok := sanitizer.ToInt("a22")
		assert.False(t, ok)
	})

	t.Run("rejects decimals", func(t *testing.T) {
		_, ok := sanitizer.ToInt("1.5")
		assert.False(t, ok)
	})
}

func TestToFloat(t *testing.T) {
	t.Run("parses fractional value", func(t *testing.T) {
		v, ok := sanitizer.ToFloat("3.14")
		assert.True(t, ok)
		assert.InDelta(t, 3.14, v, 1e-9)
	})

	t.Run("parses integer form", func(t *testing.T) {
		v, ok := sanitizer.ToFloat("7")
		assert.True(t, ok)
		assert.InDelta(t, 7.0, v, 1e-9)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, ok := sanitizer.ToFloat("seven")
		assert.False(t, ok)
	})
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "empty is false", input: "", expected: false},
		{name: "false literal", input: "false", expected: false},
		{name: "uppercase false literal", input: "FALSE", expected: false},
		{name: "off", input: "off", expected: false},
		{name: "zero", input: "0", expected: false},
		{name: "nil", input: "nil", expected: false},
		{name: "null", input: "null", expected: false},
		{name: "no", input: "no", expected: false},
		{name: "undefined", input: "undefined", expected: false},
		{name: "true literal", input: "true", expected: true},
		{name: "on", input: "on", expected: true},
		{name: "one", input: "1", expected: true},
		{name: "checkbox value", input: "newsletter", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ToBool(tt.input))
		})
	}
}
