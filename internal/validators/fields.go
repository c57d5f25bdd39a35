package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/flux-signup/models"
)

const (
	// MinNameLength is the minimum number of characters of a trimmed name.
	MinNameLength = 2

	// MinPasswordLength is the minimum number of characters of a password.
	MinPasswordLength = 8
)

// Messages returned by the field validators.
const (
	MsgNameRequired            = "Name is required"
	MsgNameTooShort            = "Name must be at least 2 characters"
	MsgEmailRequired           = "Email is required"
	MsgEmailInvalid            = "Please enter a valid email address"
	MsgPasswordRequired        = "Password is required"
	MsgPasswordTooShort        = "Password must be at least 8 characters"
	MsgConfirmPasswordRequired = "Please confirm your password"
	MsgPasswordsDoNotMatch     = "Passwords do not match"
)

// emailPattern accepts local@domain.tld where every part is one or more
// characters that are neither whitespace nor '@'.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateName checks the display name. Surrounding whitespace is ignored.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return MsgNameRequired
	}
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return MsgNameTooShort
	}
	return ""
}

// ValidateEmail checks that email is present and looks like local@domain.tld.
func ValidateEmail(email string) string {
	if email == "" {
		return MsgEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return MsgEmailInvalid
	}
	return ""
}

// ValidatePassword checks that password is present and long enough.
// Character diversity is not a validity rule; see PasswordStrength.
func ValidatePassword(password string) string {
	if password == "" {
		return MsgPasswordRequired
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return MsgPasswordTooShort
	}
	return ""
}

// ValidateConfirmPassword checks that confirm is present and equal to password.
// It only reads password; the primary password's own rules are not applied.
func ValidateConfirmPassword(confirm, password string) string {
	if confirm == "" {
		return MsgConfirmPasswordRequired
	}
	if confirm != password {
		return MsgPasswordsDoNotMatch
	}
	return ""
}

// ValidateField runs the rule for a single field against the current form
// values. It returns "" when the field is valid or unknown.
func ValidateField(field models.Field, values models.SignupValues) string {
	switch field {
	case models.FieldName:
		return ValidateName(values.Name)
	case models.FieldEmail:
		return ValidateEmail(values.Email)
	case models.FieldPassword:
		return ValidatePassword(values.Password)
	case models.FieldConfirmPassword:
		return ValidateConfirmPassword(values.ConfirmPassword, values.Password)
	default:
		return ""
	}
}

// ValidateAll validates every field. Errors contains only failing fields.
func ValidateAll(values models.SignupValues) models.ValidationResult {
	errs := make(models.FormErrors)
	for _, f := range models.Fields() {
		if msg := ValidateField(f, values); msg != "" {
			errs[f] = msg
		}
	}

	return models.ValidationResult{
		Errors:  errs,
		IsValid: len(errs) == 0,
	}
}
