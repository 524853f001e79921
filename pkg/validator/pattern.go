package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
)

// checkPatterns applies the declared regex rule sets in order: regex,
// regexAll, regexAny, regexNone. The first violated rule wins and reports
// its own error message.
//
// A pattern that does not compile is a rule defect, not bad input: it is
// logged and skipped.
func (v *Validator) checkPatterns(ctx context.Context, field, value string, opts Options) error {
	if opts.Regex != nil {
		if matched, ok := v.match(ctx, field, opts.Regex.Test, value); ok && !matched {
			return patternError(opts.Regex.Err, value)
		}
	}

	for _, p := range opts.RegexAll {
		if matched, ok := v.match(ctx, field, p.Test, value); ok && !matched {
			return patternError(p.Err, value)
		}
	}

	if opts.RegexAny != nil && len(opts.RegexAny.Tests) > 0 {
		anyMatched := false
		anyValid := false
		for _, test := range opts.RegexAny.Tests {
			matched, ok := v.match(ctx, field, test, value)
			if !ok {
				continue
			}
			anyValid = true
			if matched {
				anyMatched = true
				break
			}
		}
		if anyValid && !anyMatched {
			return patternError(opts.RegexAny.Err, value)
		}
	}

	for _, p := range opts.RegexNone {
		if matched, ok := v.match(ctx, field, p.Test, value); ok && matched {
			if p.Err != "" {
				return errors.New(p.Err)
			}
			return fmt.Errorf("%q is not an acceptable value", value)
		}
	}

	return nil
}

func (v *Validator) match(ctx context.Context, field, pattern, value string) (matched, ok bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		v.log.WarnContext(ctx, "invalid regex pattern in rule",
			slog.String("field", field),
			slog.String("pattern", pattern),
			slog.Any("error", err))
		return false, false
	}
	return re.MatchString(value), true
}

func patternError(custom, value string) error {
	if custom != "" {
		return errors.New(custom)
	}
	return fmt.Errorf("%q is not a valid value", value)
}
