package validators

import (
	"context"
	"sort"
	"strings"

	"github.com/MKhiriev/flux-signup/models"
)

// FieldErrors is the error form of a failed validation: it carries the
// per-field messages so transport layers can render them next to inputs.
// It wraps ErrValidationFailed.
type FieldErrors struct {
	Errors models.FormErrors
}

// Error lists the failing fields in form order, e.g.
// "validation failed: email: Email is required; password: ...".
func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Errors))
	seen := make(map[models.Field]bool, len(e.Errors))
	for _, f := range models.Fields() {
		if msg := e.Errors.Get(f); msg != "" {
			parts = append(parts, f.String()+": "+msg)
			seen[f] = true
		}
	}

	// fields outside the known set still get reported, in a stable order
	var extra []string
	for f, msg := range e.Errors {
		if !seen[f] && msg != "" {
			extra = append(extra, f.String()+": "+msg)
		}
	}
	sort.Strings(extra)
	parts = append(parts, extra...)

	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold.
func (e *FieldErrors) Unwrap() error {
	return ErrValidationFailed
}

// SignupValidator implements Validator for models.SignupValues.
// Field names passed to Validate restrict the check to those fields;
// with no names every field is validated.
type SignupValidator struct {
}

// NewSignupValidator constructs a new SignupValidator
// and returns it as the Validator interface.
func NewSignupValidator() Validator {
	return &SignupValidator{}
}

// Validate accepts models.SignupValues or *models.SignupValues.
//
// Returns ErrUnsupportedType for any other input, ErrUnknownField when a
// requested field name is not a signup field, a *FieldErrors when at least
// one checked field fails, and nil otherwise.
func (v *SignupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupValues:
		return v.validateSignup(ctx, value, fields...)
	case *models.SignupValues:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSignup(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SignupValidator) validateSignup(_ context.Context, values models.SignupValues, fields ...string) error {
	targets := models.Fields()
	if len(fields) > 0 {
		targets = make([]models.Field, 0, len(fields))
		for _, name := range fields {
			f := models.Field(name)
			if !f.Valid() {
				return ErrUnknownField
			}
			targets = append(targets, f)
		}
	}

	errs := make(models.FormErrors)
	for _, f := range targets {
		if msg := ValidateField(f, values); msg != "" {
			errs[f] = msg
		}
	}

	if len(errs) > 0 {
		return &FieldErrors{Errors: errs}
	}
	return nil
}
