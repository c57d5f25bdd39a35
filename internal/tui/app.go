package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/flux-signup/internal/service"
	"github.com/MKhiriev/flux-signup/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// textCapturer is implemented by pages that forward printable keys to an
// input. The root model leaves single-letter hotkeys to such pages.
type textCapturer interface {
	capturesText() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and the build info overlay
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	signup service.ClientSignupService

	pages   map[string]tea.Model
	current tea.Model

	quitByUser    bool
	signups       int
	buildInfo     models.AppBuildInfo
	serverVersion string

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, signup service.ClientSignupService) RootModel {
	return RootModel{
		ctx:       ctx,
		signup:    signup,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	if r.signup != nil && !r.signup.Offline() {
		cmds = append(cmds, r.cmdServerVersion())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && !r.capturesText():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case serverVersionMsg:
		switch {
		case msg.err == nil:
			r.serverVersion = msg.version
		case errors.Is(msg.err, service.ErrOfflineMode):
			r.serverVersion = "offline"
		default:
			r.serverVersion = "unavailable"
		}
		return r, nil

	// Cross-page navigation.
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		if _, ok := msg.Payload.(SignupSuccessNotice); ok {
			r.signups++
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

// capturesText reports whether the active page takes typed text. Pages that
// do not say otherwise are assumed to.
func (r RootModel) capturesText() bool {
	if tc, ok := r.current.(textCapturer); ok {
		return tc.capturesText()
	}
	return true
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	signup := r.signup

	return func() tea.Msg {
		version, err := signup.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
