package validator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// validateChoice checks membership in the declared choices set. Comparison
// is loose: both sides are compared in their string form, so a coerced
// integer 5 matches a declared choice "5".
func (v *Validator) validateChoice(_ context.Context, in *Input) (any, error) {
	for _, choice := range in.Opts.Choices {
		if looseEqual(in.Raw, choice) {
			return in.Value, nil
		}
	}
	return in.Value, choiceError(in.Opts.Err, in.Raw)
}

// validateRange checks that the value lies in [from, to] and, when a step
// is declared, that it is reachable from the lower bound by whole steps.
// Endpoints are numbers or single alphabetic characters.
func (v *Validator) validateRange(_ context.Context, in *Input) (any, error) {
	if from, fok := limitNumber(in.Opts.From); fok {
		to, tok := limitNumber(in.Opts.To)
		if !tok {
			return in.Value, nil // half-declared range is a no-op
		}
		step := 1.0
		if s, ok := limitNumber(in.Opts.Step); ok && s > 0 {
			step = s
		}
		value, ok := numericValue(in)
		if !ok || !inNumericRange(value, from, to, step) {
			return in.Value, choiceError(in.Opts.Err, in.Raw)
		}
		return in.Value, nil
	}

	from, fok := singleRune(in.Opts.From)
	to, tok := singleRune(in.Opts.To)
	if !fok || !tok {
		return in.Value, nil
	}
	step := int64(1)
	if s, ok := limitNumber(in.Opts.Step); ok && s >= 1 {
		step = int64(s)
	}
	r, ok := singleRune(in.Raw)
	if !ok || r < from || r > to || (int64(r-from))%step != 0 {
		return in.Value, choiceError(in.Opts.Err, in.Raw)
	}
	return in.Value, nil
}

func inNumericRange(value, from, to, step float64) bool {
	if value < from || value > to {
		return false
	}
	steps := (value - from) / step
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

func numericValue(in *Input) (float64, bool) {
	switch t := in.Value.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return limitNumber(strings.TrimSpace(in.Raw))
}

func singleRune(v any) (rune, bool) {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r := []rune(s)[0]
	return r, true
}

func looseEqual(raw string, choice any) bool {
	return raw == fmt.Sprint(choice)
}

func choiceError(custom, value string) error {
	if custom != "" {
		return errors.New(custom)
	}
	return fmt.Errorf("%q is not a valid choice", value)
}
