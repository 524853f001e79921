package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/number"
)

// Byte-size suffixes use decimal multipliers: 2kb means exactly 2,000.
var sizeSuffixRegex = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(kb|mb|gb)$`)

var sizeMultipliers = map[string]float64{
	"kb": 1e3,
	"mb": 1e6,
	"gb": 1e9,
}

// limitNumber normalizes a limiting value (number, numeric string, or
// size-suffixed string) into a float64.
func limitNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if m := sizeSuffixRegex.FindStringSubmatch(s); m != nil {
			n, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, false
			}
			return n * sizeMultipliers[strings.ToLower(m[2])], true
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// limitTime normalizes a limiting value into a point in time. Accepted
// forms: time.Time, a date string, a datetime string as produced by the
// template tokens, or a numeric Unix timestamp.
func limitTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case int:
		return time.Unix(int64(t), 0), true
	case int64:
		return time.Unix(t, 0), true
	case string:
		s := strings.TrimSpace(t)
		if d, err := ParseDate(s); err == nil {
			return d, true
		}
		if d, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
			return d, true
		}
		if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(unix, 0), true
		}
	}
	return time.Time{}, false
}

// limitOp pairs one comparison operator with its message template.
// fails reports a violation given the compared value and the limit.
type limitOp struct {
	limit  any
	custom string
	fails  func(value, limit float64) bool
	format string
}

func limitOps(opts Options) []limitOp {
	return []limitOp{
		{opts.Min, opts.MinErr, func(v, l float64) bool { return v < l }, "%s should not be less than %s%s"},
		{opts.Max, opts.MaxErr, func(v, l float64) bool { return v > l }, "%s should not be greater than %s%s"},
		{opts.Gt, opts.GtErr, func(v, l float64) bool { return v <= l }, "%s should be greater than %s%s"},
		{opts.Lt, opts.LtErr, func(v, l float64) bool { return v >= l }, "%s should be less than %s%s"},
	}
}

// checkLimits compares a numeric quantity against the declared limits.
// unit is appended to default messages (" characters", " bytes", or "").
func (v *Validator) checkLimits(field string, value float64, unit string, opts Options) error {
	for _, op := range limitOps(opts) {
		if op.limit == nil {
			continue
		}
		limit, ok := limitNumber(op.limit)
		if !ok {
			continue
		}
		if op.fails(value, limit) {
			if op.custom != "" {
				return errors.New(op.custom)
			}
			return fmt.Errorf(op.format, field, v.formatNumber(limit), unit)
		}
	}
	return nil
}

// checkDateLimits compares a parsed date against date-valued limits.
func (v *Validator) checkDateLimits(field string, value time.Time, opts Options) error {
	for _, op := range limitOps(opts) {
		if op.limit == nil {
			continue
		}
		limit, ok := limitTime(op.limit)
		if !ok {
			continue
		}
		if op.fails(float64(value.Unix()), float64(limit.Unix())) {
			if op.custom != "" {
				return errors.New(op.custom)
			}
			return fmt.Errorf(op.format, field, limit.Format("2006-01-02"), "")
		}
	}
	return nil
}

// formatNumber renders a limit with thousands separators for messages,
// e.g. 2000 becomes "2,000".
func (v *Validator) formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return v.printer.Sprint(number.Decimal(int64(n)))
	}
	return v.printer.Sprint(number.Decimal(n))
}
