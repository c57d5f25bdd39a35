package models

// SignupValues holds the current raw value of every signup field, exactly as
// typed by the user. Nothing is trimmed or normalised here; validators decide
// how to interpret whitespace.
type SignupValues struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Get returns the value of field f, or "" for an unknown field.
func (v SignupValues) Get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	default:
		return ""
	}
}

// With returns a copy of v with field f set to value.
// Unknown fields leave the copy unchanged.
func (v SignupValues) With(f Field, value string) SignupValues {
	switch f {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	}
	return v
}
