package validator

import (
	"context"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// defaultPasswordMinLength applies when the rule declares no min of its own.
const defaultPasswordMinLength = 8

// validatePassword enforces a minimum length (default 8, overridable through
// the regular limit options), a minimal composition (at least two letters
// and two non-letter characters), and an optional matchWith equality check.
// Password values are never echoed back in error messages.
func (v *Validator) validatePassword(ctx context.Context, in *Input) (any, error) {
	opts := in.Opts
	if opts.Min == nil {
		opts.Min = defaultPasswordMinLength
	}

	length := utf8.RuneCountInString(in.Raw)
	if err := v.checkLimits(in.Field, float64(length), " characters", opts); err != nil {
		return in.Value, err
	}

	letters, others := 0, 0
	for _, r := range in.Raw {
		if unicode.IsLetter(r) {
			letters++
		} else {
			others++
		}
	}
	if letters < 2 {
		return in.Value, fmt.Errorf("%s must contain at least two letters", in.Field)
	}
	if others < 2 {
		return in.Value, fmt.Errorf("%s must contain at least two non-letter characters", in.Field)
	}

	if opts.MatchWith != "" && in.Raw != opts.MatchWith {
		if opts.MatchWithErr != "" {
			return in.Value, errors.New(opts.MatchWithErr)
		}
		return in.Value, errors.New("passwords do not match")
	}

	if err := v.checkPatterns(ctx, in.Field, in.Raw, opts); err != nil {
		return in.Value, err
	}
	return in.Value, nil
}
