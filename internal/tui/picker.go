package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewdesk/workforce-system/internal/core/domain"
)

// targetOption is one entry in a picker: unassigned, a single employee, or a
// group. At most one of employee/group is set.
type targetOption struct {
	label    string
	employee *domain.Employee
	group    *domain.Group
}

// assignTargets builds the full assignment option list: unassigned, then
// every employee, then every group.
func assignTargets(svc Services) []targetOption {
	targets := []targetOption{{label: "Unassigned"}}
	for _, e := range svc.Directory.Employees() {
		targets = append(targets, targetOption{label: e.DisplayName(), employee: e})
	}
	for _, g := range svc.Groups.ListGroups() {
		targets = append(targets, targetOption{label: "group: " + g.Name, group: g})
	}
	return targets
}

// pickerChosenMsg carries the selected option.
type pickerChosenMsg struct {
	option targetOption
}

// pickerModel is a single-choice list used for task assignment and group
// membership edits.
type pickerModel struct {
	styles  *Styles
	title   string
	options []targetOption
	cursor  int
}

func newPicker(styles *Styles, title string, options []targetOption) pickerModel {
	return pickerModel{styles: styles, title: title, options: options}
}

func (p pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "esc":
		return p, func() tea.Msg { return formClosedMsg{} }

	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}

	case "down", "j":
		if p.cursor < len(p.options)-1 {
			p.cursor++
		}

	case "enter":
		opt := p.options[p.cursor]
		return p, func() tea.Msg { return pickerChosenMsg{option: opt} }
	}

	return p, nil
}

func (p pickerModel) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Title.Render(p.title))
	b.WriteString("\n\n")
	for i, opt := range p.options {
		if i == p.cursor {
			b.WriteString(p.styles.Selected.Render("> " + opt.label))
		} else {
			b.WriteString(p.styles.Item.Render("  " + opt.label))
		}
		b.WriteString("\n")
	}
	b.WriteString(p.styles.Help.Render("enter: select • esc: cancel"))
	return p.styles.Panel.Render(b.String())
}
