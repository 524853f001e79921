package validator

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/inputkit/pkg/upload"
)

// Kind is a normalized field type as produced by rule processing.
type Kind string

const (
	KindText     Kind = "text"
	KindBool     Kind = "bool"
	KindDate     Kind = "date"
	KindInt      Kind = "int"
	KindPInt     Kind = "pint"
	KindNInt     Kind = "nint"
	KindFloat    Kind = "float"
	KindPFloat   Kind = "pfloat"
	KindNFloat   Kind = "nfloat"
	KindEmail    Kind = "email"
	KindURL      Kind = "url"
	KindChoice   Kind = "choice"
	KindRange    Kind = "range"
	KindPassword Kind = "password"
	KindFile     Kind = "file"
	KindImage    Kind = "image"
	KindAudio    Kind = "audio"
	KindVideo    Kind = "video"
	KindMedia    Kind = "media"
	KindDocument Kind = "document"
	KindArchive  Kind = "archive"
)

// Pattern is a single regex test with an optional custom error message.
type Pattern struct {
	Test string `yaml:"test" json:"test"`
	Err  string `yaml:"err,omitempty" json:"err,omitempty"`
}

// PatternSet is a group of regex tests of which at least one must match.
type PatternSet struct {
	Tests []string `yaml:"tests" json:"tests"`
	Err   string   `yaml:"err,omitempty" json:"err,omitempty"`
}

// Options carries the type-specific constraints declared on a rule.
// String-valued entries may contain {placeholder} templates; they are
// expected to be resolved before validation runs.
type Options struct {
	Min any `yaml:"min,omitempty" json:"min,omitempty"`
	Max any `yaml:"max,omitempty" json:"max,omitempty"`
	Gt  any `yaml:"gt,omitempty" json:"gt,omitempty"`
	Lt  any `yaml:"lt,omitempty" json:"lt,omitempty"`

	MinErr string `yaml:"minErr,omitempty" json:"minErr,omitempty"`
	MaxErr string `yaml:"maxErr,omitempty" json:"maxErr,omitempty"`
	GtErr  string `yaml:"gtErr,omitempty" json:"gtErr,omitempty"`
	LtErr  string `yaml:"ltErr,omitempty" json:"ltErr,omitempty"`

	// Err overrides the default message of choice and range membership.
	Err     string `yaml:"err,omitempty" json:"err,omitempty"`
	Choices []any  `yaml:"choices,omitempty" json:"choices,omitempty"`

	From any `yaml:"from,omitempty" json:"from,omitempty"`
	To   any `yaml:"to,omitempty" json:"to,omitempty"`
	Step any `yaml:"step,omitempty" json:"step,omitempty"`

	Regex     *Pattern    `yaml:"regex,omitempty" json:"regex,omitempty"`
	RegexAll  []Pattern   `yaml:"regexAll,omitempty" json:"regexAll,omitempty"`
	RegexAny  *PatternSet `yaml:"regexAny,omitempty" json:"regexAny,omitempty"`
	RegexNone []Pattern   `yaml:"regexNone,omitempty" json:"regexNone,omitempty"`

	MatchWith    string `yaml:"matchWith,omitempty" json:"matchWith,omitempty"`
	MatchWithErr string `yaml:"matchWithErr,omitempty" json:"matchWithErr,omitempty"`

	Mimes    []string `yaml:"mimes,omitempty" json:"mimes,omitempty"`
	MimesErr string   `yaml:"mimesErr,omitempty" json:"mimesErr,omitempty"`
	MoveTo   string   `yaml:"moveTo,omitempty" json:"moveTo,omitempty"`
}

// Input carries one field value through a validation pass.
type Input struct {
	Field string
	Value any    // coerced value: string, int64, float64, bool, or *upload.File
	Raw   string // filtered string form, used in messages and regex checks
	Index int    // position within a list-valued field
	Opts  Options

	kind Kind // set by Validate before dispatch
}

type validateFn func(ctx context.Context, in *Input) (any, error)

// Validator dispatches values to type-specific validation functions.
// Safe for concurrent use once constructed.
type Validator struct {
	log     *slog.Logger
	storage upload.Storage
	printer *message.Printer
	fns     map[Kind]validateFn
}

// Option configures Validator creation.
type Option func(*Validator)

// WithLogger sets the logger used for unrecognized-type warnings.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// WithStorage sets the destination backend for file moves.
// Defaults to local filesystem storage.
func WithStorage(s upload.Storage) Option {
	return func(v *Validator) {
		if s != nil {
			v.storage = s
		}
	}
}

// New builds a Validator with its dispatch table.
func New(opts ...Option) *Validator {
	v := &Validator{
		log:     slog.Default(),
		storage: upload.LocalStorage{},
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.fns = map[Kind]validateFn{
		KindText:     v.validateText,
		KindBool:     v.validateBool,
		KindDate:     v.validateDate,
		KindInt:      v.validateInt,
		KindPInt:     v.validateInt,
		KindNInt:     v.validateInt,
		KindFloat:    v.validateFloat,
		KindPFloat:   v.validateFloat,
		KindNFloat:   v.validateFloat,
		KindEmail:    v.validateEmail,
		KindURL:      v.validateURL,
		KindChoice:   v.validateChoice,
		KindRange:    v.validateRange,
		KindPassword: v.validatePassword,
		KindFile:     v.fileValidator(nil),
		KindImage:    v.fileValidator([]string{"image"}),
		KindAudio:    v.fileValidator([]string{"audio"}),
		KindVideo:    v.fileValidator([]string{"video"}),
		KindMedia:    v.fileValidator([]string{"image", "audio", "video"}),
		KindDocument: v.fileValidator([]string{"document"}),
		KindArchive:  v.fileValidator([]string{"archive"}),
	}
	return v
}

// IsFileKind reports whether the kind expects an uploaded file value.
func IsFileKind(kind Kind) bool {
	switch kind {
	case KindFile, KindImage, KindAudio, KindVideo, KindMedia, KindDocument, KindArchive:
		return true
	}
	return false
}

// Validate runs the value through the validator registered for kind and
// returns the (possibly replaced) value. A validation failure is reported
// as a plain error whose message is meant for the end user; fatal file
// errors wrap upload.ErrDirNotFound or upload.ErrMoveFailed.
//
// Unknown kinds pass with a logged warning so that a misdeclared rule never
// rejects otherwise good input.
func (v *Validator) Validate(ctx context.Context, kind Kind, in Input) (any, error) {
	fn, ok := v.fns[kind]
	if !ok {
		v.log.WarnContext(ctx, "unrecognized validation type",
			slog.String("field", in.Field),
			slog.String("type", string(kind)))
		return in.Value, nil
	}

	// The polarity-variant kinds share one function and read the kind back
	// from the input.
	in.kind = kind
	return fn(ctx, &in)
}
