package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginFocusUsername = iota
	loginFocusPassword
)

// loginModel is the credential form shown before any session exists.
type loginModel struct {
	svc      Services
	styles   *Styles
	username textinput.Model
	password textinput.Model
	focus    int
	errMsg   string
}

func newLoginModel(svc Services, styles *Styles) loginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 64
	user.Width = 32
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.Width = 32
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	return loginModel{
		svc:      svc,
		styles:   styles,
		username: user,
		password: pass,
		focus:    loginFocusUsername,
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			if m.focus == loginFocusUsername {
				m.focus = loginFocusPassword
				m.username.Blur()
				m.password.Focus()
			} else {
				m.focus = loginFocusUsername
				m.password.Blur()
				m.username.Focus()
			}
			return m, nil

		case "enter":
			if m.focus == loginFocusUsername {
				m.focus = loginFocusPassword
				m.username.Blur()
				m.password.Focus()
				return m, nil
			}
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	role, err := m.svc.Access.Login(m.username.Value(), m.password.Value())
	if err != nil {
		// Deliberately vague: the core does not distinguish unknown user
		// from wrong password, and neither do we.
		m.errMsg = "Invalid username or password."
		m.password.SetValue("")
		return m, nil
	}
	m.errMsg = ""
	return m, func() tea.Msg { return loggedInMsg{role: role} }
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Workforce Sign-in"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Username"))
	b.WriteString("\n")
	b.WriteString(m.username.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter: sign in • tab: switch field • ctrl+c: quit"))
	return m.styles.Panel.Render(b.String())
}
