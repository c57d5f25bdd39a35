package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/flux-signup/internal/form"
	"github.com/MKhiriev/flux-signup/internal/service"
	"github.com/MKhiriev/flux-signup/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var fieldLabels = map[models.Field]string{
	models.FieldName:            "Name",
	models.FieldEmail:           "Email",
	models.FieldPassword:        "Password",
	models.FieldConfirmPassword: "Confirm password",
}

// SignupModel is the Bubble Tea model for the signup page. It renders one
// text input per form field and keeps their values in a form.Coordinator:
//   - every edit is copied into the coordinator with SetValue;
//   - leaving a field (tab, shift+tab, up, down) blurs it, which validates
//     only that field;
//   - enter submits, which validates every field and, when the form is valid,
//     dispatches an async submit to the client signup service.
//
// Messages appear under a field only once the coordinator reports them as
// visible. On an accepted submit the form is reset and the root model is
// asked to show the welcome page.
type SignupModel struct {
	ctx    context.Context
	signup service.ClientSignupService

	fields []models.Field
	inputs []textinput.Model
	focus  int
	coord  *form.Coordinator

	spinner    spinner.Model
	submitting bool
	overlay    errorOverlayModel
	notice     string
}

func NewSignupModel(ctx context.Context, signup service.ClientSignupService) *SignupModel {
	fields := models.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = strings.ToLower(fieldLabels[f])
		inputs[i].Width = 40
		if f == models.FieldPassword || f == models.FieldConfirmPassword {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	inputs[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &SignupModel{
		ctx:     ctx,
		signup:  signup,
		fields:  fields,
		inputs:  inputs,
		coord:   form.New(),
		spinner: s,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		return m.handleSubmitResult(msg)

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.overlay.visible() {
			if key.Matches(msg, keys.submit) || key.Matches(msg, keys.esc) {
				m.overlay.message = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.prev):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.submit):
			return m, m.submit()
		}
	}

	if m.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	_ = m.coord.SetValue(m.fields[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

func (m *SignupModel) View() string {
	var b strings.Builder

	if m.signup != nil && m.signup.Offline() {
		b.WriteString(helpStyle.Render("offline mode: the form is only checked locally"))
		b.WriteString("\n\n")
	}

	for i, f := range m.fields {
		label := labelStyle.Render(fieldLabels[f])
		if i == m.focus {
			label = focusedStyle.Render("> ") + label
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")

		if msg := m.coord.VisibleError(f); msg != "" {
			b.WriteString("    ")
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
		if f == models.FieldPassword {
			if meter := renderStrengthMeter(m.coord.Strength()); meter != "" {
				b.WriteString("    ")
				b.WriteString(meter)
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(" Signing up...\n")
	} else {
		b.WriteString("[ Sign up ]\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.notice))
		b.WriteString("\n")
	}

	page := renderPage("CREATE YOUR ACCOUNT", strings.TrimRight(b.String(), "\n"), helpLine(keys.next, keys.prev, keys.submit))
	if m.overlay.visible() {
		return page + "\n\n" + m.overlay.View()
	}
	return page
}

// moveFocus blurs the focused field and focuses the field delta steps away.
func (m *SignupModel) moveFocus(delta int) {
	_, _ = m.coord.OnBlur(m.fields[m.focus])

	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	m.notice = ""
	result := m.coord.OnSubmit()
	if !result.IsValid {
		m.focusFirstInvalid(result.Errors)
		return nil
	}

	m.submitting = true
	return tea.Batch(m.cmdSubmit(m.coord.Values()), m.spinner.Tick)
}

func (m *SignupModel) cmdSubmit(values models.SignupValues) tea.Cmd {
	ctx := m.ctx
	signup := m.signup

	return func() tea.Msg {
		result, err := signup.Submit(ctx, values)
		return submitResultMsg{values: values, result: result, err: err}
	}
}

func (m *SignupModel) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false

	switch {
	case msg.err == nil:
		m.resetForm()
		notice := SignupSuccessNotice{
			Name:    strings.TrimSpace(msg.values.Name),
			Email:   msg.values.Email,
			Offline: m.signup.Offline(),
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageWelcome, Payload: notice}
		}

	case errors.Is(msg.err, service.ErrInvalidDataProvided):
		m.coord.ApplyErrors(msg.result.Errors)
		m.focusFirstInvalid(msg.result.Errors)
		m.notice = "The server rejected the form. Please fix the highlighted fields."
		return m, nil

	default:
		m.overlay.message = humanizeServerUnavailableError(msg.err)
		return m, nil
	}
}

func (m *SignupModel) focusFirstInvalid(errs models.FormErrors) {
	for i, f := range m.fields {
		if errs.Get(f) == "" {
			continue
		}
		m.inputs[m.focus].Blur()
		m.focus = i
		m.inputs[m.focus].Focus()
		return
	}
}

func (m *SignupModel) resetForm() {
	m.coord.Reset()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
	m.notice = ""
}
