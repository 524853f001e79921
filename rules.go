package inputkit

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

// Rules maps field names to their declarations.
type Rules map[string]Rule

// Rule is the declarative specification for one field.
type Rule struct {
	// Type names the validation type, possibly through synonyms: "integer",
	// "number", "money", "boolean", "string", and "positive"/"negative"
	// prefixes all normalize to their canonical kinds. Empty means text.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`

	// Required defaults to true, except for boolean-typed fields which
	// default to optional. RequireIf, when present, overrides it.
	Required *bool `yaml:"required,omitempty" json:"required,omitempty"`

	// Default is used for optional fields with no supplied value. String
	// defaults may carry {placeholder} templates resolved against already
	// validated data.
	Default any `yaml:"default,omitempty" json:"default,omitempty"`

	// Hint overrides the missing-field message. Defaults to
	// "<field> is required".
	Hint string `yaml:"hint,omitempty" json:"hint,omitempty"`

	Filters   Filters           `yaml:"filters,omitempty" json:"filters,omitempty"`
	Options   validator.Options `yaml:"options,omitempty" json:"options,omitempty"`
	Checks    []Check           `yaml:"checks,omitempty" json:"checks,omitempty"`
	RequireIf *RequireIf        `yaml:"requireIf,omitempty" json:"requireIf,omitempty"`
}

// Filters selects the normalization steps applied to a field's raw values.
// Decoding, trimming, and tag stripping are on unless disabled; case
// folding is off unless requested. ToUpper wins when both folds are set.
type Filters struct {
	Decode    *bool `yaml:"decode,omitempty" json:"decode,omitempty"`
	Trim      *bool `yaml:"trim,omitempty" json:"trim,omitempty"`
	StripTags *bool `yaml:"stripTags,omitempty" json:"stripTags,omitempty"`
	ToUpper   bool  `yaml:"toUpper,omitempty" json:"toUpper,omitempty"`
	ToLower   bool  `yaml:"toLower,omitempty" json:"toLower,omitempty"`
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

// Check describes one externally executed database check. Either Query or
// the Entity/Field pair identifies what to look for; If selects the check
// semantics ("ifexist" or "ifnotexist", with common synonym spellings
// accepted and normalized).
type Check struct {
	If     string `yaml:"if" json:"if"`
	Entity string `yaml:"entity,omitempty" json:"entity,omitempty"`
	Field  string `yaml:"field,omitempty" json:"field,omitempty"`
	Query  string `yaml:"query,omitempty" json:"query,omitempty"`
	Params []any  `yaml:"params,omitempty" json:"params,omitempty"`
	Err    string `yaml:"err,omitempty" json:"err,omitempty"`
}

// RequireIf makes a field's requiredness conditional on another field's
// current source value.
type RequireIf struct {
	// Condition is one of checked, notchecked, equals/equal,
	// notequals/notequal.
	Condition string `yaml:"condition" json:"condition"`
	Field     string `yaml:"field" json:"field"`
	Value     any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// ParseRules decodes a YAML rules document.
//
//	email:
//	  type: email
//	  checks:
//	    - if: ifnotexists
//	      entity: users
//	      field: email
//	      err: email already registered
//	age:
//	  type: positive integer
//	  options: {min: 18}
func ParseRules(data []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules document: %w", err)
	}
	return rules, nil
}
