// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// SignupUI is the terminal front end driven by the client.
// *tui.TUI implements it.
type SignupUI interface {
	SignupFlow(ctx context.Context, opts ...tea.ProgramOption) error
}
