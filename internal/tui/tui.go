package tui

import (
	"context"
	"errors"

	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the menu/login/register screens until the user either
// authenticates or quits. On return with a nil error the session service
// holds an authenticated session.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.Session),
		"register": NewRegisterModel(ctx, t.services.Session),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the authenticated part of the client: job browsing,
// recommendations and the profile editor. It returns logout=true when the
// user asked to switch accounts rather than exit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
