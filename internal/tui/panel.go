package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
)

type panelMode int

const (
	modeList panelMode = iota
	modeCreateTask
	modeCreateGroup
	modeAddStatus
	modeAssign
	modeGroups
	modeMemberAdd
	modeMemberRemove
)

// panelModel is the task panel shown after login. Managers see every task and
// can create tasks, statuses, and groups, reassign tasks, and edit group
// membership; laborers see their own tasks and advance them through the
// status cycle.
type panelModel struct {
	svc    Services
	styles *Styles
	role   domain.Role

	mode   panelMode
	scope  ports.Scope
	cursor int
	tasks  []*domain.Task

	form        taskForm
	groupInput  textinput.Model
	statusInput textinput.Model
	picker      pickerModel

	groups      []*domain.Group
	groupCursor int
	assignTask  *domain.Task

	info   string
	errMsg string
}

func newPanelModel(svc Services, styles *Styles, role domain.Role) panelModel {
	scope := ports.ScopeMine
	if role == domain.RoleManager {
		scope = ports.ScopeAll
	}
	m := panelModel{
		svc:    svc,
		styles: styles,
		role:   role,
		scope:  scope,
	}
	m.refresh()
	return m
}

func (m *panelModel) refresh() {
	m.tasks = m.svc.Tasks.ListTasksFor(m.svc.Access.Current(), m.scope)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *panelModel) refreshGroups() {
	m.groups = m.svc.Groups.ListGroups()
	if m.groupCursor >= len(m.groups) {
		m.groupCursor = len(m.groups) - 1
	}
	if m.groupCursor < 0 {
		m.groupCursor = 0
	}
}

func (m panelModel) Update(msg tea.Msg) (panelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formClosedMsg:
		// Member pickers cancel back to the groups view, everything else to
		// the task list.
		switch m.mode {
		case modeMemberAdd, modeMemberRemove, modeCreateGroup:
			m.mode = modeGroups
		default:
			m.mode = modeList
		}
		return m, nil

	case taskSubmittedMsg:
		m.mode = modeList
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.info = fmt.Sprintf("created task %q", msg.task.Title)
		}
		m.refresh()
		return m, nil

	case pickerChosenMsg:
		return m.applyPick(msg.option)
	}

	switch m.mode {
	case modeCreateTask:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case modeCreateGroup:
		return m.updateCreateGroup(msg)
	case modeAddStatus:
		return m.updateAddStatus(msg)
	case modeAssign, modeMemberAdd, modeMemberRemove:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case modeGroups:
		return m.updateGroups(msg)
	}
	return m.updateList(msg)
}

func (m panelModel) updateList(msg tea.Msg) (panelModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.info = ""
	m.errMsg = ""

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case "tab":
		if m.svc.Access.CanManage() {
			if m.scope == ports.ScopeAll {
				m.scope = ports.ScopeMine
			} else {
				m.scope = ports.ScopeAll
			}
			m.cursor = 0
			m.refresh()
		}

	case "s":
		if len(m.tasks) > 0 {
			t := m.tasks[m.cursor]
			next := m.svc.Tasks.NextStatusInCycle(t.Status)
			if err := m.svc.Tasks.UpdateStatus(t, next); err != nil {
				m.errMsg = err.Error()
			} else {
				m.info = fmt.Sprintf("%q moved to %s", t.Title, next)
			}
			m.refresh()
		}

	case "n":
		if m.svc.Access.CanManage() {
			m.mode = modeCreateTask
			m.form = newTaskForm(m.svc, m.styles)
			return m, textinput.Blink
		}

	case "a":
		if m.svc.Access.CanManage() && len(m.tasks) > 0 {
			m.assignTask = m.tasks[m.cursor]
			m.mode = modeAssign
			m.picker = newPicker(m.styles, fmt.Sprintf("Assign %q", m.assignTask.Title), assignTargets(m.svc))
		}

	case "t":
		if m.svc.Access.CanManage() {
			m.mode = modeAddStatus
			in := textinput.New()
			in.Placeholder = "status name"
			in.CharLimit = 64
			in.Width = 32
			in.Focus()
			m.statusInput = in
			return m, textinput.Blink
		}

	case "g":
		if m.svc.Access.CanManage() {
			m.mode = modeGroups
			m.groupCursor = 0
			m.refreshGroups()
		}

	case "L":
		return m, func() tea.Msg { return loggedOutMsg{} }
	}

	return m, nil
}

func (m panelModel) updateGroups(msg tea.Msg) (panelModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.info = ""
	m.errMsg = ""

	switch key.String() {
	case "esc", "q":
		m.mode = modeList
		m.refresh()
		return m, nil

	case "up", "k":
		if m.groupCursor > 0 {
			m.groupCursor--
		}

	case "down", "j":
		if m.groupCursor < len(m.groups)-1 {
			m.groupCursor++
		}

	case "n":
		m.mode = modeCreateGroup
		in := textinput.New()
		in.Placeholder = "group name"
		in.CharLimit = 64
		in.Width = 32
		in.Focus()
		m.groupInput = in
		return m, textinput.Blink

	case "d":
		if len(m.groups) > 0 {
			g := m.groups[m.groupCursor]
			if err := m.svc.Groups.DeleteGroup(g.Name); err != nil {
				m.errMsg = err.Error()
			} else {
				m.info = fmt.Sprintf("deleted group %q", g.Name)
			}
			m.refreshGroups()
		}

	case "a":
		if len(m.groups) > 0 {
			g := m.groups[m.groupCursor]
			var opts []targetOption
			for _, e := range m.svc.Directory.Employees() {
				opts = append(opts, targetOption{label: e.DisplayName(), employee: e})
			}
			if len(opts) == 0 {
				m.info = "no employees to add"
				return m, nil
			}
			m.mode = modeMemberAdd
			m.picker = newPicker(m.styles, fmt.Sprintf("Add member to %q", g.Name), opts)
		}

	case "r":
		if len(m.groups) > 0 {
			g := m.groups[m.groupCursor]
			var opts []targetOption
			for _, e := range g.Members() {
				opts = append(opts, targetOption{label: e.DisplayName(), employee: e})
			}
			if len(opts) == 0 {
				m.info = fmt.Sprintf("group %q has no members", g.Name)
				return m, nil
			}
			m.mode = modeMemberRemove
			m.picker = newPicker(m.styles, fmt.Sprintf("Remove member from %q", g.Name), opts)
		}
	}

	return m, nil
}

// applyPick routes a picker selection to the registry the current mode
// targets.
func (m panelModel) applyPick(opt targetOption) (panelModel, tea.Cmd) {
	switch m.mode {
	case modeAssign:
		switch {
		case opt.group != nil:
			m.svc.Tasks.AssignGroup(m.assignTask, opt.group)
			m.info = fmt.Sprintf("%q assigned to group %s", m.assignTask.Title, opt.group.Name)
		case opt.employee != nil:
			m.svc.Tasks.Assign(m.assignTask, opt.employee)
			m.info = fmt.Sprintf("%q assigned to %s", m.assignTask.Title, opt.employee.DisplayName())
		default:
			m.svc.Tasks.Assign(m.assignTask, nil)
			m.info = fmt.Sprintf("%q unassigned", m.assignTask.Title)
		}
		m.assignTask = nil
		m.mode = modeList
		m.refresh()

	case modeMemberAdd:
		g := m.groups[m.groupCursor]
		if err := m.svc.Groups.AddMember(g.Name, opt.employee); err != nil {
			m.errMsg = err.Error()
		} else {
			m.info = fmt.Sprintf("added %s to %q", opt.employee.DisplayName(), g.Name)
		}
		m.mode = modeGroups
		m.refreshGroups()

	case modeMemberRemove:
		g := m.groups[m.groupCursor]
		if err := m.svc.Groups.RemoveMember(g.Name, opt.employee); err != nil {
			m.errMsg = err.Error()
		} else {
			m.info = fmt.Sprintf("removed %s from %q", opt.employee.DisplayName(), g.Name)
		}
		m.mode = modeGroups
		m.refreshGroups()
	}

	return m, nil
}

func (m panelModel) updateCreateGroup(msg tea.Msg) (panelModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.mode = modeGroups
			return m, nil
		case "enter":
			m.mode = modeGroups
			g, err := m.svc.Groups.CreateGroup(m.groupInput.Value())
			if err != nil {
				m.errMsg = err.Error()
			} else {
				m.info = fmt.Sprintf("created group %q", g.Name)
			}
			m.refreshGroups()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.groupInput, cmd = m.groupInput.Update(msg)
	return m, cmd
}

func (m panelModel) updateAddStatus(msg tea.Msg) (panelModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "enter":
			m.mode = modeList
			s, err := m.svc.Tasks.AddStatus(m.statusInput.Value())
			if err != nil {
				m.errMsg = err.Error()
			} else {
				m.info = fmt.Sprintf("added status %q", s)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.statusInput, cmd = m.statusInput.Update(msg)
	return m, cmd
}

func (m panelModel) View() string {
	switch m.mode {
	case modeCreateTask:
		return m.form.View()
	case modeCreateGroup:
		return m.viewPrompt("New Group", m.groupInput.View())
	case modeAddStatus:
		return m.viewPrompt("New Status", m.statusInput.View())
	case modeAssign, modeMemberAdd, modeMemberRemove:
		return m.picker.View()
	case modeGroups:
		return m.viewGroups()
	}
	return m.viewList()
}

func (m panelModel) viewPrompt(title, input string) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(input)
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter: create • esc: cancel"))
	return m.styles.Panel.Render(b.String())
}

func (m panelModel) viewList() string {
	subject := m.svc.Access.Current()

	var b strings.Builder
	header := fmt.Sprintf("Tasks - %s (%s)", subject.DisplayName(), m.role)
	b.WriteString(m.styles.Title.Render(header))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("scope: %s", m.scope)))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Item.Render("no tasks"))
		b.WriteString("\n")
	}
	for i, t := range m.tasks {
		line := t.Label()
		if target := targetLabel(t); target != "" {
			line += "  → " + target
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
	}
	if m.info != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render(m.info))
	}

	help := "s: advance status • L: logout • q: quit"
	if m.svc.Access.CanManage() {
		help = "n: new task • a: assign • t: new status • g: groups • tab: scope • " + help
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(help))
	return m.styles.Panel.Render(b.String())
}

func (m panelModel) viewGroups() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Groups"))
	b.WriteString("\n\n")

	for i, g := range m.groups {
		line := fmt.Sprintf("%s (%d)", g.Name, g.Size())
		if i == m.groupCursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(m.groups) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("members:"))
		b.WriteString("\n")
		members := m.groups[m.groupCursor].Members()
		if len(members) == 0 {
			b.WriteString(m.styles.Item.Render("  (none)"))
			b.WriteString("\n")
		}
		for _, e := range members {
			b.WriteString(m.styles.Item.Render("  " + e.DisplayName()))
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
	}
	if m.info != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render(m.info))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("n: new group • a: add member • r: remove member • d: delete group • esc: back"))
	return m.styles.Panel.Render(b.String())
}

func targetLabel(t *domain.Task) string {
	switch {
	case t.Assignee != nil:
		return t.Assignee.DisplayName()
	case t.Group != nil:
		return "group " + t.Group.Name
	}
	return ""
}
