package inputkit

import "errors"

var (
	// ErrNoSource is returned by Execute when no source data was supplied.
	ErrNoSource = errors.New("no data source was set")

	// ErrNoRules is returned by Execute when no field rules were supplied.
	ErrNoRules = errors.New("no field rules were set")

	// ErrUnknownField is returned by Data when the requested key was never
	// a declared field.
	ErrUnknownField = errors.New("unknown field")

	// ErrCheckFailed wraps infrastructure failures reported by a Checker;
	// these abort the run instead of producing a field error.
	ErrCheckFailed = errors.New("database check failed to run")
)

// FieldErrors maps field names to their first validation error. A field
// collects exactly one message: the first failure wins and later failures
// for the same field are dropped, mirroring the per-field short-circuit of
// the pipeline.
type FieldErrors struct {
	order []string
	msgs  map[string]string
}

// Set records a message for a field unless the field already has one.
func (e *FieldErrors) Set(field, msg string) {
	if e.msgs == nil {
		e.msgs = make(map[string]string)
	}
	if _, exists := e.msgs[field]; exists {
		return
	}
	e.msgs[field] = msg
	e.order = append(e.order, field)
}

// Has reports whether the field has an error recorded.
func (e *FieldErrors) Has(field string) bool {
	_, ok := e.msgs[field]
	return ok
}

// Get returns the message recorded for the field, or "".
func (e *FieldErrors) Get(field string) string {
	return e.msgs[field]
}

// First returns the earliest recorded field and message.
func (e *FieldErrors) First() (field, msg string) {
	if len(e.order) == 0 {
		return "", ""
	}
	field = e.order[0]
	return field, e.msgs[field]
}

// Fields returns the fields with errors in the order they were recorded.
func (e *FieldErrors) Fields() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Len returns the number of fields with errors.
func (e *FieldErrors) Len() int {
	return len(e.order)
}

// Map returns a copy of the field-to-message mapping.
func (e *FieldErrors) Map() map[string]string {
	out := make(map[string]string, len(e.msgs))
	for k, v := range e.msgs {
		out[k] = v
	}
	return out
}
