package validator

import (
	"context"
	"unicode/utf8"
)

// validateText accepts any string; limits act on the character count.
func (v *Validator) validateText(ctx context.Context, in *Input) (any, error) {
	length := utf8.RuneCountInString(in.Raw)
	if err := v.checkLimits(in.Field, float64(length), " characters", in.Opts); err != nil {
		return in.Value, err
	}
	if err := v.checkPatterns(ctx, in.Field, in.Raw, in.Opts); err != nil {
		return in.Value, err
	}
	return in.Value, nil
}

// validateBool has nothing to check: the filter stage already coerced the
// value to a bool, and every bool is valid.
func (v *Validator) validateBool(_ context.Context, in *Input) (any, error) {
	return in.Value, nil
}
