package inputkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/inputkit/pkg/upload"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

// Handler runs the validation pipeline over one request's data: missing
// check, filtering, type validation, and database checks, in that order,
// short-circuiting per field on the first failure.
//
// A Handler executes at most once; repeated Execute calls return the cached
// outcome. It is not safe for concurrent use; create one per request.
type Handler struct {
	source  Source
	added   Source
	rules   Rules
	log     *slog.Logger
	checker Checker
	storage upload.Storage

	executed bool
	execErr  error
	errs     FieldErrors
	data     map[string]any
	proc     *processed
}

// Option configures Handler creation.
type Option func(*Handler)

// WithLogger sets the logger used for pipeline diagnostics and
// unrecognized-rule warnings. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithChecker sets the collaborator that runs database existence checks.
// Without one, declared checks are skipped with a warning.
func WithChecker(c Checker) Option {
	return func(h *Handler) { h.checker = c }
}

// WithStorage sets the destination backend for file moves.
// Defaults to the local filesystem.
func WithStorage(s upload.Storage) Option {
	return func(h *Handler) { h.storage = s }
}

// New creates a Handler for the given source data and field rules.
func New(source Source, rules Rules, opts ...Option) *Handler {
	h := &Handler{
		source:  source,
		rules:   rules,
		log:     slog.Default(),
		storage: upload.LocalStorage{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AddField injects a field into the source before execution. Added fields
// win over source fields with the same name.
func (h *Handler) AddField(name string, value any) *Handler {
	if h.added == nil {
		h.added = make(Source)
	}
	h.added[name] = value
	return h
}

// AddFields injects several fields at once.
func (h *Handler) AddFields(fields Source) *Handler {
	for name, value := range fields {
		h.AddField(name, value)
	}
	return h
}

// knownChecks are the db-check names this pipeline dispatches; anything
// else is skipped with a warning, like an unrecognized type.
var knownChecks = map[string]bool{
	"ifexist":    true,
	"ifnotexist": true,
}

// Execute runs the pipeline once. The returned error is reserved for
// configuration and operational failures (missing source or rules, missing
// move destination, failed file move, checker breakdown); ordinary invalid
// input never produces an error here; inspect Succeeds and Errors instead.
func (h *Handler) Execute(ctx context.Context) error {
	if h.executed {
		return h.execErr
	}
	h.executed = true
	h.execErr = h.run(ctx)
	return h.execErr
}

func (h *Handler) run(ctx context.Context) error {
	if h.source == nil && h.added == nil {
		return ErrNoSource
	}
	if len(h.rules) == 0 {
		return ErrNoRules
	}

	log := h.log.With(slog.String("execution_id", uuid.NewString()))
	log.DebugContext(ctx, "executing validation pipeline", slog.Int("fields", len(h.rules)))

	source := make(Source, len(h.source)+len(h.added))
	for k, v := range h.source {
		source[k] = v
	}
	for k, v := range h.added {
		source[k] = v
	}

	proc, err := processRules(h.rules, source)
	if err != nil {
		return err
	}
	h.proc = proc
	h.errs = FieldErrors{}
	h.data = make(map[string]any, len(proc.rules))

	// Every missing required field is enumerated, not just the first.
	for _, field := range proc.required {
		if !present(source[field]) {
			hint := newResolver(field, h.data).resolve(proc.rules[field].hint)
			h.errs.Set(field, hint)
		}
	}
	if h.errs.Len() > 0 {
		return nil
	}

	// Extraction order matters: required fields land in the data bag
	// first so optional defaults can reference them through templates.
	vals := make(map[string]*fieldValues, len(proc.rules))
	fields := append(append([]string{}, proc.required...), proc.optional...)
	for _, field := range fields {
		vals[field] = h.extractField(field, source[field], proc.rules[field])
	}

	v := validator.New(validator.WithLogger(log), validator.WithStorage(h.storage))
	for _, field := range fields {
		if err := h.validateField(ctx, v, field, vals[field], proc.rules[field]); err != nil {
			return err
		}
	}
	if h.errs.Len() > 0 {
		return nil
	}

	for _, field := range fields {
		if err := h.checkField(ctx, log, field, vals[field], proc.rules[field]); err != nil {
			return err
		}
	}
	return nil
}

// fieldValues keeps a field's filtered values alongside their string forms
// for the validation stage.
type fieldValues struct {
	values []any
	raws   []string
	isList bool
}

func (h *Handler) extractField(field string, raw any, rule processedRule) *fieldValues {
	fv := &fieldValues{}

	if !present(raw) {
		// Optional and absent: the resolved default takes its place.
		def := rule.def
		if s, ok := def.(string); ok {
			def = newResolver(field, h.data).resolve(s)
		}
		if s, ok := def.(string); ok {
			def, _ = filterValue(s, rule.filters, rule.kind)
		}
		if def == nil && rule.kind == validator.KindBool {
			def = false
		}
		h.data[field] = def
		return fv
	}

	elements, isList := valueList(raw)
	fv.isList = isList
	for _, el := range elements {
		value, str := filterAny(el, rule.filters, rule.kind)
		fv.values = append(fv.values, value)
		fv.raws = append(fv.raws, str)
	}
	h.data[field] = fv.bagValue()
	return fv
}

// bagValue is the shape the field takes in the data bag: the single value
// for scalars, the whole slice for lists, the client filename for files.
func (fv *fieldValues) bagValue() any {
	out := make([]any, len(fv.values))
	for i, v := range fv.values {
		if f, ok := v.(*upload.File); ok {
			out[i] = f.Name
			continue
		}
		out[i] = v
	}
	if fv.isList {
		return out
	}
	if len(out) == 1 {
		return out[0]
	}
	return nil
}

func (h *Handler) validateField(ctx context.Context, v *validator.Validator, field string, fv *fieldValues, rule processedRule) error {
	if len(fv.values) == 0 {
		return nil
	}

	// Remaining templates resolve now, against data from earlier fields.
	opts := newResolver(field, h.data).resolveOptions(rule.opts)

	for i := range fv.values {
		out, err := v.Validate(ctx, rule.kind, validator.Input{
			Field: field,
			Value: fv.values[i],
			Raw:   fv.raws[i],
			Index: i,
			Opts:  opts,
		})
		if err != nil {
			if errors.Is(err, upload.ErrDirNotFound) || errors.Is(err, upload.ErrMoveFailed) {
				return err
			}
			h.errs.Set(field, err.Error())
			return nil // remaining values of this field are skipped
		}
		fv.values[i] = out
	}
	h.data[field] = fv.bagValue()
	return nil
}

func (h *Handler) checkField(ctx context.Context, log *slog.Logger, field string, fv *fieldValues, rule processedRule) error {
	if len(rule.checks) == 0 || len(fv.values) == 0 {
		return nil
	}

	res := newResolver(field, h.data)
	for _, check := range rule.checks {
		check = res.resolveCheck(check)

		if !knownChecks[check.If] {
			log.WarnContext(ctx, "unrecognized database check",
				slog.String("field", field), slog.String("check", check.If))
			continue
		}
		if h.checker == nil {
			log.WarnContext(ctx, "database check declared but no checker configured",
				slog.String("field", field), slog.String("check", check.If))
			continue
		}

		for i, value := range fv.values {
			pass, err := h.checker.Check(ctx, CheckRequest{
				Name:     check.If,
				Field:    field,
				Value:    value,
				Index:    i,
				Required: rule.required,
				Check:    check,
			})
			if err != nil {
				return fmt.Errorf("%w: %v", ErrCheckFailed, err)
			}
			if !pass {
				h.errs.Set(field, checkFailMessage(check, value))
				return nil // first failure ends this field's checks
			}
		}
	}
	return nil
}

func checkFailMessage(check Check, value any) string {
	if check.Err != "" {
		return check.Err
	}
	if check.If == "ifnotexist" {
		return fmt.Sprintf("%v already exists", value)
	}
	return fmt.Sprintf("%v does not exist", value)
}

// Succeeds reports whether the pipeline ran and found no problems.
func (h *Handler) Succeeds() bool {
	return h.executed && h.execErr == nil && h.errs.Len() == 0
}

// Fails is the negation of Succeeds.
func (h *Handler) Fails() bool {
	return !h.Succeeds()
}

// Error returns the error message for a field, or the first recorded
// message when called without arguments. Empty when there is none.
func (h *Handler) Error(field ...string) string {
	if len(field) > 0 {
		return h.errs.Get(field[0])
	}
	_, msg := h.errs.First()
	return msg
}

// Errors returns all field error messages.
func (h *Handler) Errors() map[string]string {
	return h.errs.Map()
}

// Data returns the processed value for a declared field. Requesting a field
// that was never declared is a programming error reported as
// ErrUnknownField.
func (h *Handler) Data(field string) (any, error) {
	if h.proc == nil || h.proc.rules == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if _, declared := h.proc.rules[field]; !declared {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return h.data[field], nil
}

// AllData returns the full processed data mapping.
func (h *Handler) AllData() map[string]any {
	out := make(map[string]any, len(h.data))
	for k, v := range h.data {
		out[k] = v
	}
	return out
}
