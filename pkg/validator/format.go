package validator

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Bare domains are acceptable URLs: an optional scheme, dotted labels, an
// optional port and path.
var bareURLRegex = regexp.MustCompile(`^(?:(?:https?|ftp)://)?(?:[\w-]+\.)+[a-zA-Z]{2,}(?::\d+)?(?:/\S*)?$`)

func (v *Validator) validateEmail(ctx context.Context, in *Input) (any, error) {
	s := in.Raw
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || !strings.Contains(domainOf(s), ".") {
		return in.Value, fmt.Errorf("%q is not a valid email address", s)
	}

	length := utf8.RuneCountInString(s)
	if err := v.checkLimits(in.Field, float64(length), " characters", in.Opts); err != nil {
		return in.Value, err
	}
	if err := v.checkPatterns(ctx, in.Field, s, in.Opts); err != nil {
		return in.Value, err
	}
	return in.Value, nil
}

func (v *Validator) validateURL(ctx context.Context, in *Input) (any, error) {
	s := in.Raw
	if !isURL(s) {
		return in.Value, fmt.Errorf("%q is not a valid url", s)
	}

	length := utf8.RuneCountInString(s)
	if err := v.checkLimits(in.Field, float64(length), " characters", in.Opts); err != nil {
		return in.Value, err
	}
	if err := v.checkPatterns(ctx, in.Field, s, in.Opts); err != nil {
		return in.Value, err
	}
	return in.Value, nil
}

func isURL(s string) bool {
	if s == "" {
		return false
	}
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		return err == nil && u.Host != "" && u.Scheme != ""
	}
	return bareURLRegex.MatchString(s)
}

func domainOf(email string) string {
	idx := strings.LastIndex(email, "@")
	if idx < 0 {
		return ""
	}
	return email[idx+1:]
}
