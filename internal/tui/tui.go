package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/service"
	"github.com/MKhiriev/flux-signup/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user leaves the program with ctrl+c.
var ErrUserQuit = errors.New("user quit")

const (
	pageSignup  = "signup"
	pageWelcome = "welcome"
)

type TUI struct {
	signup    service.ClientSignupService
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SignupService == nil {
		return nil, errNoSignupService
	}
	return &TUI{signup: services.SignupService, buildInfo: buildInfo, logger: logger}, nil
}

// newRoot builds the page set shared by SignupFlow and the tests.
func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageSignup:  NewSignupModel(ctx, t.signup),
		pageWelcome: NewWelcomeModel(),
	}
	return NewRootModel(ctx, pages, pageSignup, t.buildInfo, t.signup)
}

// SignupFlow runs the signup form until the user quits.
func (t *TUI) SignupFlow(ctx context.Context, opts ...tea.ProgramOption) error {
	root := t.newRoot(ctx)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Int("accounts", result.signups).Msg("signup form closed by user")
		return ErrUserQuit
	}
	return nil
}
