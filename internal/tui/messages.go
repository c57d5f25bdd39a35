package tui

import "github.com/MKhiriev/flux-signup/models"

// NavigateTo asks the root model to switch pages. A non-nil Payload is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// SignupSuccessNotice is delivered to the welcome page after an accepted
// submit.
type SignupSuccessNotice struct {
	Name    string
	Email   string
	Offline bool
}

type submitResultMsg struct {
	values models.SignupValues
	result models.ValidationResult
	err    error
}

type serverVersionMsg struct {
	version string
	err     error
}
