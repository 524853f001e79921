// Package validator implements the type-keyed validation stage of the input
// pipeline: each declared field type (text, date, integer and float variants,
// email, url, choice, range, password, file and file subtypes) maps to one
// validation function in a dispatch table built once at construction.
//
// Every value runs through the same sequence: a type-specific format check,
// then limiting-value checks (min/max/gt/lt), then regex rule sets (regex,
// regexAll, regexAny, regexNone). The first failing stage produces the error
// and nothing after it runs.
//
// Limiting values may be plain numbers, numeric strings, byte-size strings
// such as "2kb" or "2.5mb" (decimal multipliers), or dates; they are
// normalized into a comparable form appropriate to the field type. Default
// limit messages format numbers with thousands separators; each operator has
// a custom override (minErr, maxErr, gtErr, ltErr).
//
// An unrecognized type is not an error: it is logged as a warning and the
// value passes untouched, so a misdeclared rule degrades to a no-op rather
// than rejecting user input.
//
//	v := validator.New()
//	out, err := v.Validate(ctx, validator.KindInt, validator.Input{
//	    Field: "age",
//	    Value: int64(25),
//	    Raw:   "25",
//	    Opts:  validator.Options{Min: 18},
//	})
//
// File kinds additionally consult the upload package for error-code,
// size, and spoofing checks, and can relocate the file through a Storage
// backend, in which case the returned value is the stored filename.
package validator
