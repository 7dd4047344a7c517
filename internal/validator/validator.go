// Package validator checks bookmark inputs against the site name and site URL rules.
package validator

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field identifies which input a value was entered into.
type Field int

const (
	FieldName Field = iota + 1
	FieldURL
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "siteName"
	case FieldURL:
		return "siteURL"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// jsSpace is the whitespace set of a browser regex \s; RE2's \s is ASCII only.
const jsSpace = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var (
	nameRule = regexp.MustCompile(`^[A-Z][a-z]{3,9}` + jsSpace + `?([A-Z][a-z]{0,9})?$`)
	urlRule  = regexp.MustCompile(`^(http://|https://)?([w|W]{1,3}[.])?[a-zA-Z0-9]+[.](com|org|net)$`)

	rules = map[Field]validation.Rule{
		FieldName: validation.Match(nameRule).Error("must be one or two capitalized words"),
		FieldURL:  validation.Match(urlRule).Error("must be a .com, .org or .net address"),
	}
)

// RuleError reports the field whose rule rejected a value.
type RuleError struct {
	Field Field
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

// Check validates value against the rule for field. It returns nil on a match
// and a *RuleError otherwise.
func Check(field Field, value string) error {
	rule, ok := rules[field]
	if !ok {
		return fmt.Errorf("validator: no rule for %s", field)
	}
	if err := validation.Validate(value, validation.Required, rule); err != nil {
		return &RuleError{Field: field, Err: err}
	}
	return nil
}
