// Package validation is the field-validation engine used by the login and
// sign-up forms. Each Rule inspects one field of a form snapshot; a Composite
// aggregates rules and reports the first failure for a field.
package validation

import (
	"unicode/utf8"

	"survey_client/platform/validator"
)

// Reasons reported by the built-in rules.
const (
	ReasonRequired = "field is required"
	ReasonInvalid  = "value is invalid"
)

// FormData is a snapshot of a form: field name to current value.
type FormData map[string]string

// Get returns the value of field, or "" when the field is absent.
func (f FormData) Get(field string) string {
	if f == nil {
		return ""
	}
	return f[field]
}

// FieldError is the failure reported by a Rule. Reason is the display string.
type FieldError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Reason
}

// Rule is a single pure check against one named field. Validate must not
// mutate form and must return nil when the value is acceptable.
type Rule interface {
	Field() string
	Validate(form FormData) error
}

func invalid(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// RequiredRule fails when the field is absent or empty. Whitespace counts
// as a value.
type RequiredRule struct {
	field string
}

// Required returns a rule that rejects an empty value.
func Required(field string) RequiredRule {
	return RequiredRule{field: field}
}

func (r RequiredRule) Field() string { return r.field }

func (r RequiredRule) Validate(form FormData) error {
	if form.Get(r.field) == "" {
		return invalid(r.field, ReasonRequired)
	}
	return nil
}

// MinLengthRule fails when a present value has fewer than Min characters.
// An absent field passes; an empty one is checked.
type MinLengthRule struct {
	field string
	min   int
}

// MinLength returns a rule that rejects values shorter than n characters.
func MinLength(field string, n int) MinLengthRule {
	return MinLengthRule{field: field, min: n}
}

func (r MinLengthRule) Field() string { return r.field }

func (r MinLengthRule) Validate(form FormData) error {
	value, ok := form[r.field]
	if !ok {
		return nil
	}
	if utf8.RuneCountInString(value) < r.min {
		return invalid(r.field, ReasonInvalid)
	}
	return nil
}

// EmailRule fails when a non-empty value is not an email address.
// An empty value passes; pair it with Required to reject blanks.
type EmailRule struct {
	field string
}

// Email returns a rule that checks the email shape of the value.
func Email(field string) EmailRule {
	return EmailRule{field: field}
}

func (r EmailRule) Field() string { return r.field }

func (r EmailRule) Validate(form FormData) error {
	value := form.Get(r.field)
	if value == "" {
		return nil
	}
	if !validator.Shared.IsEmail(value) {
		return invalid(r.field, ReasonInvalid)
	}
	return nil
}

// CompareFieldsRule fails when the value differs from another field's value.
type CompareFieldsRule struct {
	field string
	other string
}

// CompareFields returns a rule requiring field to equal other, e.g. a
// password confirmation.
func CompareFields(field, other string) CompareFieldsRule {
	return CompareFieldsRule{field: field, other: other}
}

func (r CompareFieldsRule) Field() string { return r.field }

func (r CompareFieldsRule) Validate(form FormData) error {
	if form.Get(r.field) != form.Get(r.other) {
		return invalid(r.field, ReasonInvalid)
	}
	return nil
}

var (
	_ Rule = RequiredRule{}
	_ Rule = MinLengthRule{}
	_ Rule = EmailRule{}
	_ Rule = CompareFieldsRule{}
)
