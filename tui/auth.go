package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	authSignIn authMode = iota
	authSignUp
)

type authField int

const (
	fieldEmail authField = iota
	fieldPassword
)

const msgCheckEmail = "Check your email for verification link!"

// authModal is the sign-in / sign-up overlay shown from the settings view.
// It owns its two inputs; submission and the resulting session are handled
// by the root model so the modal stays a plain form.
type authModal struct {
	open       bool
	mode       authMode
	field      authField
	email      textinput.Model
	password   textinput.Model
	submitting bool
	errText    string
	notice     string
}

func newAuthModal() authModal {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 156
	email.Width = 28

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 156
	password.Width = 28
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return authModal{email: email, password: password}
}

func (a *authModal) Open(mode authMode) {
	a.open = true
	a.mode = mode
	a.field = fieldEmail
	a.submitting = false
	a.errText = ""
	a.notice = ""
	a.email.SetValue("")
	a.password.SetValue("")
	a.email.Focus()
	a.password.Blur()
}

func (a *authModal) Close() {
	a.open = false
	a.email.Blur()
	a.password.Blur()
}

func (a *authModal) NextField() {
	if a.field == fieldEmail {
		a.field = fieldPassword
		a.email.Blur()
		a.password.Focus()
	} else {
		a.field = fieldEmail
		a.password.Blur()
		a.email.Focus()
	}
}

// ToggleMode flips between sign in and sign up, keeping the typed values.
func (a *authModal) ToggleMode() {
	if a.mode == authSignIn {
		a.mode = authSignUp
	} else {
		a.mode = authSignIn
	}
	a.errText = ""
	a.notice = ""
}

// CanSubmit reports whether both fields are filled and no request is
// already in flight.
func (a *authModal) CanSubmit() bool {
	return !a.submitting && a.email.Value() != "" && a.password.Value() != ""
}

func (a *authModal) UpdateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.email, cmd = a.email.Update(msg)
	cmds = append(cmds, cmd)
	a.password, cmd = a.password.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}
