package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/flux-signup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignupValidator(t *testing.T) {
	v := NewSignupValidator()
	require.NotNil(t, v)
}

func TestSignupValidator_Dispatch(t *testing.T) {
	v := NewSignupValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var values *models.SignupValues
		require.ErrorIs(t, v.Validate(ctx, values), ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validValues()))
	})

	t.Run("pointer", func(t *testing.T) {
		values := validValues()
		require.NoError(t, v.Validate(ctx, &values))
	})
}

func TestSignupValidator_FieldErrors(t *testing.T) {
	v := NewSignupValidator()
	ctx := context.Background()

	values := validValues()
	values.Email = "not-an-email"
	values.ConfirmPassword = "different1"

	err := v.Validate(ctx, values)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var fieldErrs *FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, models.FormErrors{
		models.FieldEmail:           MsgEmailInvalid,
		models.FieldConfirmPassword: MsgPasswordsDoNotMatch,
	}, fieldErrs.Errors)
	assert.Equal(t,
		"validation failed: email: Please enter a valid email address; confirmPassword: Passwords do not match",
		err.Error())
}

func TestSignupValidator_Scoped(t *testing.T) {
	v := NewSignupValidator()
	ctx := context.Background()

	values := models.SignupValues{Name: "Jane Doe"}

	t.Run("only the requested field is checked", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, values, string(models.FieldName)))
	})

	t.Run("requested failing field", func(t *testing.T) {
		err := v.Validate(ctx, values, string(models.FieldName), string(models.FieldPassword))

		var fieldErrs *FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Equal(t, models.FormErrors{models.FieldPassword: MsgPasswordRequired}, fieldErrs.Errors)
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, values, "phone"), ErrUnknownField)
	})
}

func TestFieldErrors_ErrorIncludesUnknownFieldsSorted(t *testing.T) {
	err := &FieldErrors{Errors: models.FormErrors{
		models.Field("zeta"):  "z",
		models.Field("alpha"): "a",
		models.FieldName:      MsgNameRequired,
	}}

	assert.Equal(t, "validation failed: name: Name is required; alpha: a; zeta: z", err.Error())
}
