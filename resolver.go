package inputkit

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

var placeholderRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// resolver substitutes {placeholder} tokens inside hints, option strings,
// defaults, and check descriptors. Captures are case-insensitive. Built-in
// tokens resolve to the current field name or the current time; anything
// else is looked up in the already-computed data bag. Unknown captures keep
// their literal placeholder text: resolution order between fields is a
// caller concern and an unresolved token degrades gracefully instead of
// erroring.
type resolver struct {
	field string
	data  map[string]any
	now   time.Time
}

func newResolver(field string, data map[string]any) *resolver {
	return &resolver{field: field, data: data, now: time.Now()}
}

func (r *resolver) resolve(s string) string {
	if !strings.Contains(s, "{") {
		return s
	}
	return placeholderRegex.ReplaceAllStringFunc(s, func(match string) string {
		capture := strings.ToLower(strings.TrimSpace(match[1 : len(match)-1]))
		switch capture {
		case "_this":
			return r.field
		case "current_timestamp", "current_datetime", "current_date":
			return r.now.Format("2006-01-02 15:04:05")
		case "now", "timestamp", "current_time":
			return fmt.Sprintf("%d", r.now.Unix())
		}
		if v, ok := r.lookup(capture); ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

func (r *resolver) lookup(capture string) (any, bool) {
	if v, ok := r.data[capture]; ok {
		return v, true
	}
	// Captures are case-insensitive; fall back to a case-folded scan.
	for k, v := range r.data {
		if strings.EqualFold(k, capture) {
			return v, true
		}
	}
	return nil, false
}

// resolveAny resolves string values and leaves everything else untouched.
func (r *resolver) resolveAny(v any) any {
	if s, ok := v.(string); ok {
		return r.resolve(s)
	}
	return v
}

// resolveOptions returns a copy of the options with every templated string
// substituted. Limiting values stay typed when they were declared as
// numbers.
func (r *resolver) resolveOptions(opts validator.Options) validator.Options {
	out := opts

	out.Min = r.resolveAny(opts.Min)
	out.Max = r.resolveAny(opts.Max)
	out.Gt = r.resolveAny(opts.Gt)
	out.Lt = r.resolveAny(opts.Lt)
	out.MinErr = r.resolve(opts.MinErr)
	out.MaxErr = r.resolve(opts.MaxErr)
	out.GtErr = r.resolve(opts.GtErr)
	out.LtErr = r.resolve(opts.LtErr)
	out.Err = r.resolve(opts.Err)

	if len(opts.Choices) > 0 {
		out.Choices = make([]any, len(opts.Choices))
		for i, c := range opts.Choices {
			out.Choices[i] = r.resolveAny(c)
		}
	}
	out.From = r.resolveAny(opts.From)
	out.To = r.resolveAny(opts.To)
	out.Step = r.resolveAny(opts.Step)

	if opts.Regex != nil {
		p := *opts.Regex
		p.Err = r.resolve(p.Err)
		out.Regex = &p
	}
	if len(opts.RegexAll) > 0 {
		out.RegexAll = resolvePatterns(r, opts.RegexAll)
	}
	if opts.RegexAny != nil {
		set := *opts.RegexAny
		set.Err = r.resolve(set.Err)
		out.RegexAny = &set
	}
	if len(opts.RegexNone) > 0 {
		out.RegexNone = resolvePatterns(r, opts.RegexNone)
	}

	out.MatchWith = r.resolve(opts.MatchWith)
	out.MatchWithErr = r.resolve(opts.MatchWithErr)
	out.MimesErr = r.resolve(opts.MimesErr)
	out.MoveTo = r.resolve(opts.MoveTo)

	return out
}

func resolvePatterns(r *resolver, patterns []validator.Pattern) []validator.Pattern {
	out := make([]validator.Pattern, len(patterns))
	for i, p := range patterns {
		p.Err = r.resolve(p.Err)
		out[i] = p
	}
	return out
}

// resolveCheck substitutes templates inside a db-check descriptor.
func (r *resolver) resolveCheck(check Check) Check {
	out := check
	out.Entity = r.resolve(check.Entity)
	out.Field = r.resolve(check.Field)
	out.Query = r.resolve(check.Query)
	out.Err = r.resolve(check.Err)
	if len(check.Params) > 0 {
		out.Params = make([]any, len(check.Params))
		for i, p := range check.Params {
			out.Params[i] = r.resolveAny(p)
		}
	}
	return out
}
