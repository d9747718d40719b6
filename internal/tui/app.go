// Package tui is the terminal presentation layer: a login form followed by a
// role-scoped task panel. It renders results from the core services and never
// reaches into their internals.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
)

// Services bundles the core dependencies the UI needs. Everything is injected
// once at construction.
type Services struct {
	Access    ports.AccessService
	Directory ports.DirectoryService
	Groups    ports.GroupService
	Tasks     ports.TaskService
}

// loggedInMsg is emitted by the login form after a successful login.
type loggedInMsg struct {
	role domain.Role
}

// loggedOutMsg is emitted by the panel when the user logs out.
type loggedOutMsg struct{}

type appState int

const (
	stateLogin appState = iota
	statePanel
)

// App is the root bubbletea model.
type App struct {
	svc    Services
	styles *Styles
	state  appState
	login  loginModel
	panel  panelModel
	width  int
	height int
}

func NewApp(svc Services) *App {
	styles := NewStyles()
	return &App{
		svc:    svc,
		styles: styles,
		state:  stateLogin,
		login:  newLoginModel(svc, styles),
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case loggedInMsg:
		a.state = statePanel
		a.panel = newPanelModel(a.svc, a.styles, msg.role)
		return a, nil

	case loggedOutMsg:
		a.svc.Access.Logout()
		a.state = stateLogin
		a.login = newLoginModel(a.svc, a.styles)
		return a, textinput.Blink
	}

	var cmd tea.Cmd
	switch a.state {
	case stateLogin:
		a.login, cmd = a.login.Update(msg)
	case statePanel:
		a.panel, cmd = a.panel.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	switch a.state {
	case statePanel:
		return a.panel.View()
	default:
		return a.login.View()
	}
}
