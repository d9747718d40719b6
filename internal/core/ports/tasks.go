package ports

import "github.com/crewdesk/workforce-system/internal/core/domain"

// Scope selects which tasks a listing returns.
type Scope string

const (
	// ScopeAll returns every task in creation order.
	ScopeAll Scope = "all"
	// ScopeMine returns tasks assigned to the viewer directly or through
	// group membership, evaluated against current membership.
	ScopeMine Scope = "mine"
)

// CreateTaskInput carries all data needed to create a task. At most one of
// Assignee and Group may be set; a task may be created unassigned. An empty
// Status defaults to the first seeded status.
type CreateTaskInput struct {
	Title       string `validate:"required"`
	Description string
	Status      domain.Status
	Assignee    *domain.Employee
	Group       *domain.Group
}

// TaskService owns tasks and their status vocabulary. The registry is
// append-only; tasks are never deleted.
type TaskService interface {
	// Statuses returns the ordered status list, seeded with Open,
	// In-Progress, Complete.
	Statuses() []domain.Status

	// AddStatus appends a new status. Case-insensitive name collisions fail
	// with domain.ErrDuplicateName.
	AddStatus(name string) (domain.Status, error)

	CreateTask(input CreateTaskInput) (*domain.Task, error)

	// UpdateStatus replaces the task's status in place. Unknown statuses
	// fail with domain.ErrNotFound. No history is kept.
	UpdateStatus(t *domain.Task, s domain.Status) error

	// Assign and AssignGroup set the task's single assignment target,
	// clearing the other kind.
	Assign(t *domain.Task, e *domain.Employee)
	AssignGroup(t *domain.Task, g *domain.Group)

	ListTasksFor(viewer *domain.Employee, scope Scope) []*domain.Task

	// NextStatusInCycle returns the status after current in list order,
	// wrapping to the first after the last. Unknown statuses map to the
	// first.
	NextStatusInCycle(current domain.Status) domain.Status
}
