// Package validation checks project drafts before they reach the registry.
//
// The registry trusts its callers; this package is the collaborator that enforces the
// form rules (required title, minimum description length, bounded team size).
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/tracker/pkg/domain"
)

// Limits configures the validation rules.
type Limits struct {
	// DescriptionMinLength is exclusive: a description must be longer than this.
	DescriptionMinLength int `yaml:"description_min_length" json:"description_min_length"`
	// DescriptionMaxLength caps the description in characters. 0 disables the check.
	DescriptionMaxLength int `yaml:"description_max_length" json:"description_max_length"`
	// TitleMaxLength caps the title in characters. 0 disables the check.
	TitleMaxLength int `yaml:"title_max_length" json:"title_max_length"`
	// PeopleMin and PeopleMax bound the team size, inclusive.
	PeopleMin int `yaml:"people_min" json:"people_min"`
	PeopleMax int `yaml:"people_max" json:"people_max"`
}

// DefaultLimits returns the rules of the project form.
func DefaultLimits() Limits {
	return Limits{
		DescriptionMinLength: 5,
		PeopleMin:            1,
		PeopleMax:            5,
	}
}

// Check reports a misconfigured set of limits.
func (l Limits) Check() error {
	switch {
	case l.DescriptionMinLength < 0:
		return fmt.Errorf("description_min_length must not be negative")
	case l.DescriptionMaxLength < 0 || l.TitleMaxLength < 0:
		return fmt.Errorf("max lengths must not be negative")
	case l.DescriptionMaxLength > 0 && l.DescriptionMaxLength <= l.DescriptionMinLength:
		return fmt.Errorf("description_max_length (%d) must exceed description_min_length (%d)", l.DescriptionMaxLength, l.DescriptionMinLength)
	case l.PeopleMin > l.PeopleMax:
		return fmt.Errorf("people_min (%d) must not exceed people_max (%d)", l.PeopleMin, l.PeopleMax)
	}
	return nil
}

// FieldError describes why one field of a draft was rejected.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Is makes every FieldError match domain.ErrInvalidInput.
func (e *FieldError) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

// Validator checks drafts against a set of Limits.
type Validator struct {
	limits Limits
}

// New creates a Validator.
func New(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// Limits returns the rules in use.
func (v *Validator) Limits() Limits {
	return v.limits
}

// Validate checks every field of the draft and reports all violations at once.
// The returned error matches domain.ErrInvalidInput; use Fields to list the violations.
func (v *Validator) Validate(d domain.Draft) error {
	var errs []error

	title := strings.TrimSpace(d.Title)
	switch {
	case title == "":
		errs = append(errs, &FieldError{Field: "title", Reason: "is required"})
	case v.limits.TitleMaxLength > 0 && utf8.RuneCountInString(title) > v.limits.TitleMaxLength:
		errs = append(errs, &FieldError{Field: "title", Reason: fmt.Sprintf("must be at most %d characters", v.limits.TitleMaxLength)})
	}

	description := strings.TrimSpace(d.Description)
	length := utf8.RuneCountInString(description)
	switch {
	case description == "":
		errs = append(errs, &FieldError{Field: "description", Reason: "is required"})
	case length <= v.limits.DescriptionMinLength:
		errs = append(errs, &FieldError{Field: "description", Reason: fmt.Sprintf("must be longer than %d characters", v.limits.DescriptionMinLength)})
	case v.limits.DescriptionMaxLength > 0 && length > v.limits.DescriptionMaxLength:
		errs = append(errs, &FieldError{Field: "description", Reason: fmt.Sprintf("must be at most %d characters", v.limits.DescriptionMaxLength)})
	}

	if d.People < v.limits.PeopleMin || d.People > v.limits.PeopleMax {
		errs = append(errs, &FieldError{Field: "people", Reason: fmt.Sprintf("must be between %d and %d", v.limits.PeopleMin, v.limits.PeopleMax)})
	}

	return errors.Join(errs...)
}

// Normalize sanitizes the text fields of the draft and validates the result.
func (v *Validator) Normalize(d domain.Draft) (domain.Draft, error) {
	title, err := Sanitize(d.Title, 0)
	if err != nil {
		return d, fmt.Errorf("%w: title: %w", domain.ErrInvalidInput, err)
	}
	description, err := Sanitize(d.Description, 0)
	if err != nil {
		return d, fmt.Errorf("%w: description: %w", domain.ErrInvalidInput, err)
	}

	clean := domain.Draft{Title: title, Description: description, People: d.People}
	if err := v.Validate(clean); err != nil {
		return d, err
	}
	return clean, nil
}

// Fields extracts the FieldErrors carried by err, in report order.
func Fields(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	if fe, ok := err.(*FieldError); ok {
		return append(out, fe)
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, Fields(e)...)
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}
