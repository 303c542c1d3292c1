package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/jobscout/models"
)

// NavigateTo asks the root router to switch the active page. An optional
// Payload is delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult reports the outcome of an async login attempt. A nil Err ends
// the login flow.
type LoginResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu after a successful registration
// that could not immediately log in.
type RegisterSuccessNotice struct {
	Username string
}

type jobsLoadedMsg struct {
	jobs []models.Job
	err  error
}

type recsLoadedMsg struct {
	recs []models.RecommendedJob
	err  error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	err error
}
