package inputkit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

// processedRule is the execution metadata derived from one declared Rule.
type processedRule struct {
	kind     validator.Kind
	required bool
	hint     string
	filters  Filters
	opts     validator.Options
	checks   []Check
	def      any
}

// processed is the per-execution expansion of the whole rule map. Field
// lists are sorted so that every run walks fields in a stable order.
type processed struct {
	rules    map[string]processedRule
	required []string
	optional []string
}

var typeSynonyms = map[string]string{
	"":        "text",
	"string":  "text",
	"integer": "int",
	"number":  "float",
	"money":   "float",
	"boolean": "bool",
}

// normalizeKind maps a declared type through the synonym table,
// case-insensitively, composing a polarity prefix with the numeric base:
// "Positive Integer" becomes pint, "negative number" becomes nfloat.
// Unknown names pass through lowercased; the validator treats them as
// no-ops with a warning.
func normalizeKind(declared string) validator.Kind {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(declared)))

	polarity := ""
	if len(words) > 0 {
		switch words[0] {
		case "positive":
			polarity, words = "p", words[1:]
		case "negative":
			polarity, words = "n", words[1:]
		}
	}

	base := strings.Join(words, "")
	if canonical, ok := typeSynonyms[base]; ok {
		base = canonical
	}

	if polarity != "" && (base == "int" || base == "float") {
		base = polarity + base
	}
	return validator.Kind(base)
}

// normalizeCheckName canonicalizes a db-check name: "ifexists" and
// "ifdoesnotexist" both collapse onto the two supported spellings "ifexist"
// and "ifnotexist". Unknown names survive normalization and are skipped
// with a warning at execution time.
func normalizeCheckName(name string) string {
	s := strings.ToLower(name)
	s = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
	s = strings.ReplaceAll(s, "doesnot", "not")
	s = strings.ReplaceAll(s, "doesnt", "not")
	s = strings.ReplaceAll(s, "exists", "exist")
	if !strings.HasPrefix(s, "if") {
		s = "if" + s
	}
	return s
}

// processRules expands the declared rule map against the current source:
// every field gets a normalized kind, a required/optional classification
// (with requireIf conditions already applied), a hint template, filters,
// options, and normalized check descriptors.
func processRules(rules Rules, source Source) (*processed, error) {
	p := &processed{rules: make(map[string]processedRule, len(rules))}

	for field, rule := range rules {
		kind := normalizeKind(rule.Type)

		required := kind != validator.KindBool
		if rule.Required != nil {
			required = *rule.Required
		}
		if rule.RequireIf != nil {
			met, err := requireIfMet(rule.RequireIf, field, source)
			if err != nil {
				return nil, err
			}
			required = met
		}

		hint := rule.Hint
		if hint == "" {
			hint = "{_this} is required"
		}

		checks := make([]Check, len(rule.Checks))
		for i, check := range rule.Checks {
			check.If = normalizeCheckName(check.If)
			checks[i] = check
		}

		p.rules[field] = processedRule{
			kind:     kind,
			required: required,
			hint:     hint,
			filters:  rule.Filters,
			opts:     rule.Options,
			checks:   checks,
			def:      rule.Default,
		}

		if required {
			p.required = append(p.required, field)
		} else {
			p.optional = append(p.optional, field)
		}
	}

	sort.Strings(p.required)
	sort.Strings(p.optional)
	return p, nil
}

// requireIfMet evaluates a conditional-requiredness descriptor against the
// referenced field's current source value. Equality is loose: both sides
// are compared in string form.
func requireIfMet(cond *RequireIf, field string, source Source) (bool, error) {
	ref := source[cond.Field]

	switch strings.ToLower(strings.TrimSpace(cond.Condition)) {
	case "checked":
		return present(ref), nil
	case "notchecked":
		return !present(ref), nil
	case "equals", "equal":
		return looseEqual(ref, cond.Value), nil
	case "notequals", "notequal":
		return !looseEqual(ref, cond.Value), nil
	default:
		return false, fmt.Errorf("invalid requireIf condition %q on field %q", cond.Condition, field)
	}
}

func looseEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
