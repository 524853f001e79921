package validator

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Accepted date shapes: YYYY-MM-DD, YYYYMMDD, or the separated form with a
// single whitespace instead of hyphens. Both separators must agree.
var dateRegex = regexp.MustCompile(`^(\d{4})(?:-(\d{1,2})-(\d{1,2})|\s(\d{1,2})\s(\d{1,2})|(\d{2})(\d{2}))$`)

// ParseDate parses the date formats the pipeline accepts and rejects
// calendar-impossible dates such as February 30th.
func ParseDate(s string) (time.Time, error) {
	m := dateRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("%q is not a valid date format", s)
	}

	year, _ := strconv.Atoi(m[1])
	var month, day int
	switch {
	case m[2] != "":
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	case m[4] != "":
		month, _ = strconv.Atoi(m[4])
		day, _ = strconv.Atoi(m[5])
	default:
		month, _ = strconv.Atoi(m[6])
		day, _ = strconv.Atoi(m[7])
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%q is not a valid date", s)
	}
	return t, nil
}

func (v *Validator) validateDate(ctx context.Context, in *Input) (any, error) {
	t, err := ParseDate(in.Raw)
	if err != nil {
		return in.Value, err
	}

	if err := v.checkDateLimits(in.Field, t, in.Opts); err != nil {
		return in.Value, err
	}
	if err := v.checkPatterns(ctx, in.Field, in.Raw, in.Opts); err != nil {
		return in.Value, err
	}
	return in.Value, nil
}
