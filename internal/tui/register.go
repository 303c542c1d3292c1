package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/jobscout/internal/service"
)

// RegisterModel is the Bubble Tea model for the account creation screen. It
// renders four text inputs (username, email, password, password confirmation)
// and dispatches an async registration command on form submission. A
// successful registration logs the new account straight in, so the produced
// [LoginResult] ends the whole flow; if the account was created but the
// follow-up sign-in failed, the model navigates back to the menu with a
// [RegisterSuccessNotice] so the user can sign in manually.
type RegisterModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with four pre-configured text
// inputs. The username field receives focus immediately; the password fields
// use masked echo.
func NewRegisterModel(ctx context.Context, session service.SessionService) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "username"
	fields[0].CharLimit = 64
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "repeat password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	return &RegisterModel{
		ctx:     ctx,
		session: session,
		inputs:  fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Esc cancels back to the menu, tab cycles
// focus, enter validates inputs (all required; passwords must match) and
// dispatches the async registration command. All other key events are
// forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err == nil {
			return m, nil
		}

		if errors.Is(result.Err, service.ErrRegisterOnServer) {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}

		// The account was created but the automatic sign-in failed.
		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			pass := m.inputs[2].Value()
			repeat := m.inputs[3].Value()

			if username == "" || email == "" || pass == "" || repeat == "" {
				m.errMsg = "All fields are required"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field           │ Value\n")
	b.WriteString("────────────────┼────────────────────────────────────\n")
	b.WriteString("Username        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email           │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password        │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		err := session.Register(ctx, username, email, pass)
		return LoginResult{Err: err, Username: username}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
