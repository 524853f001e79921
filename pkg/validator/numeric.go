package validator

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

// validateInt handles int, pint, and nint. The filter stage coerces numeric
// strings to int64; a value still carried as a string failed that guard and
// is reported as a format error here.
func (v *Validator) validateInt(ctx context.Context, in *Input) (any, error) {
	n, ok := in.Value.(int64)
	if !ok {
		if parsed, valid := sanitizer.ToInt(in.Raw); valid {
			n = parsed
		} else {
			return in.Value, fmt.Errorf("%q is not a valid integer", in.Raw)
		}
	}

	switch in.kind {
	case KindPInt:
		if n <= 0 {
			return in.Value, fmt.Errorf("%q is not a valid positive integer", in.Raw)
		}
	case KindNInt:
		if n >= 0 {
			return in.Value, fmt.Errorf("%q is not a valid negative integer", in.Raw)
		}
	}

	if err := v.checkLimits(in.Field, float64(n), "", in.Opts); err != nil {
		return in.Value, err
	}
	if err := v.checkPatterns(ctx, in.Field, in.Raw, in.Opts); err != nil {
		return in.Value, err
	}
	return in.Value, nil
}

// validateFloat handles float, pfloat, and nfloat analogously.
func (v *Validator) validateFloat(ctx context.Context, in *Input) (any, error) {
	var f float64
	switch t := in.Value.(type) {
	case float64:
		f = t
	case int64:
		f = float64(t)
	default:
		if parsed, valid := sanitizer.ToFloat(in.Raw); valid {
			f = parsed
		} else {
			return in.Value, fmt.Errorf("%q is not a valid number", in.Raw)
		}
	}

	switch in.kind {
	case KindPFloat:
		if f <= 0 {
			return in.Value, fmt.Errorf("%q is not a valid positive number", in.Raw)
		}
	case KindNFloat:
		if f >= 0 {
			return in.Value, fmt.Errorf("%q is not a valid negative number", in.Raw)
		}
	}

	if err := v.checkLimits(in.Field, f, "", in.Opts); err != nil {
		return in.Value, err
	}
	if err := v.checkPatterns(ctx, in.Field, in.Raw, in.Opts); err != nil {
		return in.Value, err
	}
	return in.Value, nil
}
