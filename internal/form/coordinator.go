package form

import (
	"fmt"

	"github.com/MKhiriev/flux-signup/internal/validators"
	"github.com/MKhiriev/flux-signup/models"
)

// Coordinator tracks values, touched state and errors of one signup form.
type Coordinator struct {
	values  models.SignupValues
	touched models.TouchedMap
	errors  models.FormErrors

	rule FieldRule
}

// New returns a Coordinator in the mount state: empty values, nothing
// touched, no errors.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		touched: make(models.TouchedMap),
		errors:  make(models.FormErrors),
		rule:    defaultRule,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetValue records a new value for field. It neither validates nor marks the
// field touched: errors only change on blur or submit.
func (c *Coordinator) SetValue(field models.Field, value string) error {
	if !field.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	c.values = c.values.With(field, value)
	return nil
}

// Value returns the current value of field ("" for unknown fields).
func (c *Coordinator) Value(field models.Field) string {
	return c.values.Get(field)
}

// Values returns the current values of every field.
func (c *Coordinator) Values() models.SignupValues {
	return c.values
}

// OnBlur handles the user leaving field: the field becomes touched and only
// its own error is recomputed. Other fields keep their errors as they were.
func (c *Coordinator) OnBlur(field models.Field) (models.FormState, error) {
	if !field.Valid() {
		return c.State(), fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	c.touched[field] = true
	c.setError(field, c.rule(field, c.values))

	return c.State(), nil
}

// OnSubmit touches every field, recomputes every error and reports whether
// the form may proceed. The returned result is detached from the coordinator.
func (c *Coordinator) OnSubmit() models.ValidationResult {
	for _, f := range models.Fields() {
		c.touched[f] = true
		c.setError(f, c.rule(f, c.values))
	}

	return models.ValidationResult{
		Errors:  c.errors.Clone(),
		IsValid: !c.errors.HasErrors(),
	}
}

// IsValid reports whether the current values pass every rule. It does not
// depend on which fields are touched and does not change stored errors.
func (c *Coordinator) IsValid() bool {
	for _, f := range models.Fields() {
		if c.rule(f, c.values) != "" {
			return false
		}
	}
	return true
}

// Touched reports whether field has been blurred or submitted.
func (c *Coordinator) Touched(field models.Field) bool {
	return c.touched[field]
}

// Error returns the stored error of field, whether or not it is touched.
func (c *Coordinator) Error(field models.Field) string {
	return c.errors.Get(field)
}

// VisibleError returns the error to display under field: the stored error
// once the field is touched, "" before that.
func (c *Coordinator) VisibleError(field models.Field) string {
	if !c.touched[field] {
		return ""
	}
	return c.errors.Get(field)
}

// ApplyErrors overlays errors produced elsewhere (for example by the server
// on submit) and marks those fields touched so they are displayed. Unknown
// fields are ignored; an empty message clears the field's error.
func (c *Coordinator) ApplyErrors(errs models.FormErrors) {
	for f, msg := range errs {
		if !f.Valid() {
			continue
		}
		c.touched[f] = true
		c.setError(f, msg)
	}
}

// Strength returns the live password strength for the current password.
func (c *Coordinator) Strength() models.PasswordStrength {
	return validators.PasswordStrength(c.values.Password)
}

// State returns a detached snapshot of the form.
func (c *Coordinator) State() models.FormState {
	return models.FormState{
		Values:  c.values,
		Touched: c.touched.Clone(),
		Errors:  c.errors.Clone(),
		IsValid: c.IsValid(),
	}
}

// Reset returns the form to its mount state, e.g. after a successful submit.
func (c *Coordinator) Reset() {
	c.values = models.SignupValues{}
	c.touched = make(models.TouchedMap)
	c.errors = make(models.FormErrors)
}

func (c *Coordinator) setError(field models.Field, msg string) {
	if msg == "" {
		delete(c.errors, field)
		return
	}
	c.errors[field] = msg
}
