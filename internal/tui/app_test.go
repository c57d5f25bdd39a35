// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/flux-signup/internal/service"
	"github.com/MKhiriev/flux-signup/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(svc *mockClientSignupService) RootModel {
	if svc == nil {
		svc = &mockClientSignupService{}
	}
	ui := &TUI{signup: svc, buildInfo: models.NewAppBuildInfo("1.0.0", "2026-10-15", "abc123")}
	return ui.newRoot(context.Background())
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r := newTestRoot(nil)

	r, cmd := update(t, r, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, r.quitByUser)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRootModel_VTypesOnSignupPage(t *testing.T) {
	r := newTestRoot(nil)

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})

	assert.False(t, r.showBuildInfo)
	page := r.current.(*SignupModel)
	assert.Equal(t, "v", page.coord.Value(models.FieldName))
}

func TestRootModel_BuildInfoOnWelcomePage(t *testing.T) {
	r := newTestRoot(nil)
	r, _ = update(t, r, NavigateTo{Page: pageWelcome})

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	require.True(t, r.showBuildInfo)

	view := r.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: abc123")
	assert.Contains(t, view, "Server version: N/A")

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	r := newTestRoot(nil)
	notice := SignupSuccessNotice{Name: "Jo", Email: "jo@example.com"}

	r, cmd := update(t, r, NavigateTo{Page: pageWelcome, Payload: notice})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, r.signups)

	payload := cmd()
	assert.Equal(t, notice, payload)

	r, _ = update(t, r, payload)
	view := r.View()
	assert.Contains(t, view, "Welcome, Jo!")
	assert.Contains(t, view, "jo@example.com")

	// enter on the welcome page leads back to the form
	_, cmd = update(t, r, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageSignup}, cmd())
}

func TestRootModel_NavigateUnknownPage(t *testing.T) {
	r := newTestRoot(nil)
	before := r.current

	r, cmd := update(t, r, NavigateTo{Page: "missing"})

	assert.Nil(t, cmd)
	assert.Equal(t, before, r.current)
}

func TestRootModel_ServerVersion(t *testing.T) {
	tests := []struct {
		name string
		msg  serverVersionMsg
		want string
	}{
		{name: "online", msg: serverVersionMsg{version: "2.0.0"}, want: "2.0.0"},
		{name: "offline", msg: serverVersionMsg{err: service.ErrOfflineMode}, want: "offline"},
		{name: "unavailable", msg: serverVersionMsg{err: errors.New("boom")}, want: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := update(t, newTestRoot(nil), tt.msg)
			assert.Equal(t, tt.want, r.serverVersion)
		})
	}
}

func TestRootModel_InitFetchesServerVersionOnlyOnline(t *testing.T) {
	online := newTestRoot(&mockClientSignupService{})
	msg, ok := findMsg[serverVersionMsg](runCmd(online.Init()))
	require.True(t, ok)
	assert.Equal(t, "1.0.0", msg.version)

	offline := newTestRoot(&mockClientSignupService{offline: true})
	_, ok = findMsg[serverVersionMsg](runCmd(offline.Init()))
	assert.False(t, ok)
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unavailable", err: service.ErrServerUnavailable, want: "The signup server is unavailable. Please try again later."},
		{name: "integrity", err: service.ErrIntegrityCheckFailed, want: "The server could not verify the request. Check the client hash key."},
		{name: "dial", err: errors.New("dial tcp 127.0.0.1:8080: connection refused"), want: "No network connection or the server is unavailable"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}
