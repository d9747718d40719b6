package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
)

const (
	formFocusTitle = iota
	formFocusDescription
	formFocusTarget
	formFocusCount
)

// taskForm is the manager's task creation form.
type taskForm struct {
	svc    Services
	styles *Styles

	title       textinput.Model
	description textarea.Model
	targets     []targetOption
	targetIdx   int
	focus       int
}

func newTaskForm(svc Services, styles *Styles) taskForm {
	title := textinput.New()
	title.Placeholder = "Task title..."
	title.CharLimit = 200
	title.Width = 48
	title.Focus()

	desc := textarea.New()
	desc.Placeholder = "Description (optional)..."
	desc.CharLimit = 2000
	desc.SetWidth(48)
	desc.SetHeight(4)

	return taskForm{
		svc:         svc,
		styles:      styles,
		title:       title,
		description: desc,
		targets:     assignTargets(svc),
		focus:       formFocusTitle,
	}
}

// formClosedMsg is emitted when the form is dismissed without submitting.
type formClosedMsg struct{}

// taskSubmittedMsg carries the outcome of a form submission.
type taskSubmittedMsg struct {
	task *domain.Task
	err  error
}

func (f taskForm) Update(msg tea.Msg) (taskForm, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}

	switch key.String() {
	case "esc":
		return f, func() tea.Msg { return formClosedMsg{} }

	case "ctrl+s":
		return f, f.submit()

	case "tab", "shift+tab":
		if key.String() == "tab" {
			f.focus = (f.focus + 1) % formFocusCount
		} else {
			f.focus = (f.focus - 1 + formFocusCount) % formFocusCount
		}
		f.title.Blur()
		f.description.Blur()
		switch f.focus {
		case formFocusTitle:
			f.title.Focus()
		case formFocusDescription:
			f.description.Focus()
		}
		return f, nil

	case "left", "right":
		if f.focus == formFocusTarget {
			n := len(f.targets)
			if key.String() == "right" {
				f.targetIdx = (f.targetIdx + 1) % n
			} else {
				f.targetIdx = (f.targetIdx - 1 + n) % n
			}
			return f, nil
		}

	case "enter":
		if f.focus == formFocusTarget {
			return f, f.submit()
		}
		if f.focus == formFocusTitle {
			f.focus = formFocusDescription
			f.title.Blur()
			f.description.Focus()
			return f, nil
		}
	}

	return f.updateInputs(msg)
}

func (f taskForm) updateInputs(msg tea.Msg) (taskForm, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.title, cmd = f.title.Update(msg)
	cmds = append(cmds, cmd)
	f.description, cmd = f.description.Update(msg)
	cmds = append(cmds, cmd)
	return f, tea.Batch(cmds...)
}

func (f taskForm) submit() tea.Cmd {
	target := f.targets[f.targetIdx]
	return func() tea.Msg {
		task, err := f.svc.Tasks.CreateTask(ports.CreateTaskInput{
			Title:       f.title.Value(),
			Description: f.description.Value(),
			Assignee:    target.employee,
			Group:       target.group,
		})
		return taskSubmittedMsg{task: task, err: err}
	}
}

func (f taskForm) View() string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render("New Task"))
	b.WriteString("\n\n")
	b.WriteString(f.styles.Label.Render("Title"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")
	b.WriteString(f.styles.Label.Render("Description"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")

	target := f.targets[f.targetIdx].label
	if f.focus == formFocusTarget {
		b.WriteString(f.styles.Selected.Render("Assign to: ◀ " + target + " ▶"))
	} else {
		b.WriteString(f.styles.Label.Render("Assign to: " + target))
	}
	b.WriteString("\n")
	b.WriteString(f.styles.Help.Render("ctrl+s: create • tab: next field • ←/→: pick target • esc: cancel"))
	return f.styles.Panel.Render(b.String())
}
