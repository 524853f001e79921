// Package sanitizer provides value-normalization helpers applied to raw
// request input before validation: URL-decoding, whitespace trimming, markup
// stripping, case folding, and best-effort type coercion.
//
// The package is deliberately forgiving. Every function returns a usable
// value and never an error; a string that cannot be coerced to the requested
// type is passed through unchanged so that the validation stage can report a
// proper format error instead. This keeps sanitization and validation
// concerns separate: sanitizer normalizes, validator judges.
//
// # Usage
//
//	clean := sanitizer.Apply("  <b>Hello</b>%20World  ",
//	    sanitizer.URLDecode,
//	    sanitizer.Trim,
//	    sanitizer.StripTags,
//	)
//	// clean == "Hello World"
//
// Coercion helpers mirror the looseness of web form input:
//
//	v, ok := sanitizer.ToInt("42")   // 42, true
//	v, ok = sanitizer.ToInt("a42")   // 0, false, leave the string alone
//	b := sanitizer.ToBool("off")     // false
//
// All functions are stateless and safe for concurrent use.
package sanitizer
