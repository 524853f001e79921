// Package inputkit is a declarative input-validation and sanitization
// engine. Given a mapping of raw request values and a mapping of per-field
// rules, it classifies fields as missing, required, or invalid; filters
// each value; validates it against its declared type; and optionally runs
// database existence checks, all without hand-written per-field code.
//
// # Pipeline
//
// Execution is a single synchronous pass with a fixed sequence: added
// fields are merged into the source, rules are expanded into execution
// metadata (type normalization, required/optional classification,
// conditional requiredness), missing required fields are enumerated, values
// are filtered and coerced into the data bag, remaining {placeholder}
// templates are resolved, type validation runs, and finally database
// checks. Each field stops at its first failure; the run as a whole always
// continues to the next field.
//
//	h := inputkit.New(inputkit.Source{
//	    "email": "USER@Example.com ",
//	    "age":   "25",
//	}, inputkit.Rules{
//	    "email": {Type: "email"},
//	    "age":   {Type: "positive integer", Options: validator.Options{Min: 18}},
//	})
//	if err := h.Execute(ctx); err != nil {
//	    // configuration or operational failure, not bad input
//	}
//	if h.Fails() {
//	    for field, msg := range h.Errors() { ... }
//	}
//	age, _ := h.Data("age") // int64(25)
//
// # Error model
//
// Ordinary invalid input never surfaces as a Go error: it is recorded per
// field, first failure wins, and queried through Succeeds, Error, and
// Errors. Execute returns an error only for configuration problems (no
// source, no rules, missing move destination) and operational failures
// (file move, checker breakdown). Unrecognized types and check names are
// logged warnings that validate as no-ops.
//
// # Templates
//
// Strings inside hints, defaults, options, and check descriptors may
// reference {placeholders}: {_this} is the current field name, time tokens
// such as {now} and {current_date} expand to the current time, and any
// other capture is looked up among already-processed field values. Unknown
// captures keep their literal text rather than failing.
//
// Subpackages: pkg/sanitizer (filtering and coercion), pkg/validator
// (type-specific validation and limit comparison), pkg/upload (file upload
// checks, spoofing detection, content-hash relocation), pkg/dbcheck
// (Postgres and Redis checkers).
package inputkit
