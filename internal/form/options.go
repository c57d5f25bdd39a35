package form

import (
	"github.com/MKhiriev/flux-signup/internal/validators"
	"github.com/MKhiriev/flux-signup/models"
)

// FieldRule computes the error message of one field from the whole form.
// It must return "" for a valid field.
type FieldRule func(field models.Field, values models.SignupValues) string

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithFieldRule replaces the per-field rule. The default is
// validators.ValidateField.
func WithFieldRule(rule FieldRule) Option {
	return func(c *Coordinator) {
		if rule != nil {
			c.rule = rule
		}
	}
}

// WithValues pre-fills the form, e.g. when restoring a draft.
// Prefilled fields stay untouched.
func WithValues(values models.SignupValues) Option {
	return func(c *Coordinator) {
		c.values = values
	}
}

func defaultRule(field models.Field, values models.SignupValues) string {
	return validators.ValidateField(field, values)
}
