package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel is shown after an accepted signup.
type WelcomeModel struct {
	notice SignupSuccessNotice
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(SignupSuccessNotice); ok {
		m.notice = notice
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.submit) || key.Matches(keyMsg, keys.esc) {
		return m, func() tea.Msg { return NavigateTo{Page: pageSignup} }
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	name := m.notice.Name
	if name == "" {
		name = "there"
	}
	b.WriteString(successStyle.Render("Welcome, " + name + "!"))
	b.WriteString("\n\n")

	if m.notice.Email != "" {
		b.WriteString("Your account for ")
		b.WriteString(m.notice.Email)
		b.WriteString(" has been created.\n")
	}
	if m.notice.Offline {
		b.WriteString(helpStyle.Render("(checked locally, the client is offline)"))
		b.WriteString("\n")
	}

	hotKeys := helpLine(
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign up another account")),
		keys.buildInfo,
	)
	return renderPage("WELCOME", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *WelcomeModel) capturesText() bool {
	return false
}
