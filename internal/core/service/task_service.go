package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
	"github.com/crewdesk/workforce-system/internal/metrics"
)

// TaskService owns the task registry and the status vocabulary. The registry
// is append-only and kept in creation order.
type TaskService struct {
	logger   zerolog.Logger
	validate *validator.Validate

	statuses []domain.Status
	tasks    []*domain.Task
	nextID   int64
}

func NewTaskService(logger zerolog.Logger) *TaskService {
	return &TaskService{
		logger:   logger,
		validate: validator.New(),
		statuses: domain.SeedStatuses(),
		nextID:   1,
	}
}

// Statuses returns the ordered status list.
func (s *TaskService) Statuses() []domain.Status {
	out := make([]domain.Status, len(s.statuses))
	copy(out, s.statuses)
	return out
}

// AddStatus appends a new status to the cycle. Duplicate names are rejected
// case-insensitively.
func (s *TaskService) AddStatus(name string) (domain.Status, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("status name: %w", domain.ErrValidation)
	}
	for _, st := range s.statuses {
		if strings.EqualFold(string(st), name) {
			return "", fmt.Errorf("status %q: %w", name, domain.ErrDuplicateName)
		}
	}

	status := domain.Status(name)
	s.statuses = append(s.statuses, status)
	s.logger.Info().Str("status", name).Msg("status added")
	return status, nil
}

// CreateTask appends a new task. A task may be created unassigned, but never
// with both an employee and a group target. An empty status defaults to the
// first seeded status.
func (s *TaskService) CreateTask(input ports.CreateTaskInput) (*domain.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("task title: %w", domain.ErrValidation)
	}
	if input.Assignee != nil && input.Group != nil {
		return nil, fmt.Errorf("task has both an employee and a group target: %w", domain.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = s.statuses[0]
	} else if !s.knownStatus(status) {
		return nil, fmt.Errorf("status %q: %w", status, domain.ErrNotFound)
	}

	t := &domain.Task{
		ID:          s.nextID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Assignee:    input.Assignee,
		Group:       input.Group,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)

	metrics.TasksCreatedTotal.WithLabelValues(assignmentKind(t)).Inc()
	s.logger.Info().Int64("task_id", t.ID).Str("title", t.Title).Str("status", string(status)).Msg("task created")
	return t, nil
}

// UpdateStatus replaces the task's status in place. Only current status is
// modeled; no history is kept.
func (s *TaskService) UpdateStatus(t *domain.Task, status domain.Status) error {
	if !s.knownStatus(status) {
		return fmt.Errorf("status %q: %w", status, domain.ErrNotFound)
	}
	t.Status = status
	metrics.StatusChangesTotal.Inc()
	s.logger.Info().Int64("task_id", t.ID).Str("status", string(status)).Msg("task status updated")
	return nil
}

// Assign delegates the task to a single employee, clearing any group target.
func (s *TaskService) Assign(t *domain.Task, e *domain.Employee) {
	t.Assignee = e
	t.Group = nil
}

// AssignGroup delegates the task to a group, clearing any direct assignee.
func (s *TaskService) AssignGroup(t *domain.Task, g *domain.Group) {
	t.Group = g
	t.Assignee = nil
}

// ListTasksFor returns tasks visible to viewer under scope, in creation
// order. Mine honours both direct assignment and group membership, evaluated
// against current membership at call time.
func (s *TaskService) ListTasksFor(viewer *domain.Employee, scope ports.Scope) []*domain.Task {
	if scope != ports.ScopeMine {
		out := make([]*domain.Task, len(s.tasks))
		copy(out, s.tasks)
		return out
	}

	var out []*domain.Task
	for _, t := range s.tasks {
		if t.AssignedTo(viewer) {
			out = append(out, t)
		}
	}
	return out
}

// NextStatusInCycle returns the status following current in list order,
// wrapping around after the last. Unknown statuses map to the first.
func (s *TaskService) NextStatusInCycle(current domain.Status) domain.Status {
	for i, st := range s.statuses {
		if st == current {
			return s.statuses[(i+1)%len(s.statuses)]
		}
	}
	return s.statuses[0]
}

func (s *TaskService) knownStatus(status domain.Status) bool {
	for _, st := range s.statuses {
		if st == status {
			return true
		}
	}
	return false
}

func assignmentKind(t *domain.Task) string {
	switch {
	case t.Assignee != nil:
		return "employee"
	case t.Group != nil:
		return "group"
	}
	return "none"
}
