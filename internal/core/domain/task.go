package domain

import "time"

// Status is a named stage in a task's progression. Equality is by name.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In-Progress"
	StatusComplete   Status = "Complete"
)

// SeedStatuses returns the default status progression, in cycle order.
func SeedStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusComplete}
}

// Task is a unit of work. A task is delegated to at most one assignment
// target: a single employee or a single group, never both.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	Assignee    *Employee
	Group       *Group
	CreatedAt   time.Time
}

// AssignedTo reports whether the task concerns e, either by direct assignment
// or through current group membership. Membership is evaluated at call time,
// so group changes are visible immediately.
func (t *Task) AssignedTo(e *Employee) bool {
	if t.Assignee == e && t.Assignee != nil {
		return true
	}
	return t.Group != nil && t.Group.Contains(e)
}

// Label is the listing label: "Title (Status)".
func (t *Task) Label() string {
	return t.Title + " (" + string(t.Status) + ")"
}
