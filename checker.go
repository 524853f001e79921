package inputkit

import "context"

// CheckRequest is the unit of work handed to a database Checker: one check
// descriptor applied to one value of one field.
type CheckRequest struct {
	// Name is the normalized check name: "ifexist" requires the value to
	// exist, "ifnotexist" requires it not to.
	Name     string
	Field    string
	Value    any
	Index    int
	Required bool
	Check    Check
}

// Checker runs existence checks against an external store. The first
// return value reports whether the check passed; a non-nil error means the
// check could not run at all (infrastructure failure) and aborts the whole
// execution rather than producing a field error.
//
// Implementations for Postgres and Redis live in pkg/dbcheck.
type Checker interface {
	Check(ctx context.Context, req CheckRequest) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, req CheckRequest) (bool, error)

func (f CheckerFunc) Check(ctx context.Context, req CheckRequest) (bool, error) {
	return f(ctx, req)
}
