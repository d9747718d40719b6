package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
)

func newTaskService() *TaskService {
	return NewTaskService(zerolog.Nop())
}

func TestTaskService_Statuses_Seeded(t *testing.T) {
	tasks := newTaskService()

	got := tasks.Statuses()
	want := []domain.Status{domain.StatusOpen, domain.StatusInProgress, domain.StatusComplete}
	if len(got) != len(want) {
		t.Fatalf("expected %d statuses, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s != want[i] {
			t.Fatalf("expected %v, got %v at %d", want, s, i)
		}
	}
}

func TestTaskService_AddStatus(t *testing.T) {
	tasks := newTaskService()

	s, err := tasks.AddStatus("Blocked")
	if err != nil {
		t.Fatalf("AddStatus returned error: %v", err)
	}
	if s != domain.Status("Blocked") {
		t.Fatalf("unexpected status: %v", s)
	}
	if got := tasks.Statuses(); got[len(got)-1] != s {
		t.Fatalf("expected new status appended, got %v", got)
	}

	if _, err := tasks.AddStatus("blocked"); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected case-insensitive ErrDuplicateName, got %v", err)
	}
	if _, err := tasks.AddStatus("OPEN"); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected seeded names to collide, got %v", err)
	}
	if _, err := tasks.AddStatus("  "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank name, got %v", err)
	}
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	dir := loadedDirectory(t, [][]string{empRow("bob", "pw", "Laborer")})
	bob, _ := dir.Lookup("bob")
	g := domain.NewGroup("Crew")
	tasks := newTaskService()

	if _, err := tasks.CreateTask(ports.CreateTaskInput{Title: "  "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank title, got %v", err)
	}
	if _, err := tasks.CreateTask(ports.CreateTaskInput{Title: "Dual", Assignee: bob, Group: g}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for dual target, got %v", err)
	}
	if _, err := tasks.CreateTask(ports.CreateTaskInput{Title: "Bad status", Status: "Nope"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown status, got %v", err)
	}
}

func TestTaskService_CreateTask_DefaultsAndUnassigned(t *testing.T) {
	tasks := newTaskService()

	// Unassigned creation is allowed; assignment can happen later.
	task, err := tasks.CreateTask(ports.CreateTaskInput{Title: "Sweep floor"})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if task.Status != domain.StatusOpen {
		t.Fatalf("expected default status Open, got %v", task.Status)
	}
	if task.Assignee != nil || task.Group != nil {
		t.Fatalf("expected unassigned task, got %+v", task)
	}
	if task.ID != 1 {
		t.Fatalf("expected first id 1, got %d", task.ID)
	}

	second, err := tasks.CreateTask(ports.CreateTaskInput{Title: "Next", Status: domain.StatusComplete})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if second.ID != 2 || second.Status != domain.StatusComplete {
		t.Fatalf("unexpected second task: %+v", second)
	}
}

func TestTaskService_UpdateStatus(t *testing.T) {
	tasks := newTaskService()
	task, err := tasks.CreateTask(ports.CreateTaskInput{Title: "Fix pump"})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	if err := tasks.UpdateStatus(task, domain.StatusInProgress); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if task.Status != domain.StatusInProgress {
		t.Fatalf("expected in-progress, got %v", task.Status)
	}

	if err := tasks.UpdateStatus(task, "Bogus"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if task.Status != domain.StatusInProgress {
		t.Fatalf("failed update must not change the task, got %v", task.Status)
	}
}

func TestTaskService_Assign_Exclusivity(t *testing.T) {
	dir := loadedDirectory(t, [][]string{empRow("bob", "pw", "Laborer")})
	bob, _ := dir.Lookup("bob")
	g := domain.NewGroup("Crew")
	tasks := newTaskService()

	task, err := tasks.CreateTask(ports.CreateTaskInput{Title: "Patrol"})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	tasks.Assign(task, bob)
	if task.Assignee != bob || task.Group != nil {
		t.Fatalf("expected direct assignment only, got %+v", task)
	}

	tasks.AssignGroup(task, g)
	if task.Group != g || task.Assignee != nil {
		t.Fatalf("group assignment must clear the direct assignee, got %+v", task)
	}

	tasks.Assign(task, bob)
	if task.Assignee != bob || task.Group != nil {
		t.Fatalf("direct assignment must clear the group, got %+v", task)
	}
}

func TestTaskService_ListTasksFor(t *testing.T) {
	dir := loadedDirectory(t, [][]string{
		empRow("amy", "pw1", "Manager"),
		empRow("bob", "pw2", "Laborer"),
	})
	amy, _ := dir.Lookup("amy")
	bob, _ := dir.Lookup("bob")
	crew := domain.NewGroup("Crew")
	crew.AddMember(amy)

	tasks := newTaskService()
	t1, _ := tasks.CreateTask(ports.CreateTaskInput{Title: "Direct", Assignee: bob})
	t2, _ := tasks.CreateTask(ports.CreateTaskInput{Title: "Crewed", Group: crew})
	t3, _ := tasks.CreateTask(ports.CreateTaskInput{Title: "Orphan"})

	all := tasks.ListTasksFor(bob, ports.ScopeAll)
	if len(all) != 3 || all[0] != t1 || all[1] != t2 || all[2] != t3 {
		t.Fatalf("expected creation order for All, got %+v", all)
	}

	mine := tasks.ListTasksFor(bob, ports.ScopeMine)
	if len(mine) != 1 || mine[0] != t1 {
		t.Fatalf("expected bob to see only his direct task, got %+v", mine)
	}

	mine = tasks.ListTasksFor(amy, ports.ScopeMine)
	if len(mine) != 1 || mine[0] != t2 {
		t.Fatalf("expected amy to see the crew task, got %+v", mine)
	}

	// Membership is evaluated at query time: adding bob to the crew
	// immediately surfaces the crew task.
	crew.AddMember(bob)
	mine = tasks.ListTasksFor(bob, ports.ScopeMine)
	if len(mine) != 2 || mine[0] != t1 || mine[1] != t2 {
		t.Fatalf("expected live group membership in Mine, got %+v", mine)
	}
}

func TestTaskService_NextStatusInCycle(t *testing.T) {
	tasks := newTaskService()

	cases := []struct {
		current, want domain.Status
	}{
		{domain.StatusOpen, domain.StatusInProgress},
		{domain.StatusInProgress, domain.StatusComplete},
		{domain.StatusComplete, domain.StatusOpen}, // wraps
		{"Unknown", domain.StatusOpen},
	}
	for _, tc := range cases {
		if got := tasks.NextStatusInCycle(tc.current); got != tc.want {
			t.Fatalf("NextStatusInCycle(%v) = %v, want %v", tc.current, got, tc.want)
		}
	}

	// Added statuses extend the cycle.
	if _, err := tasks.AddStatus("Archived"); err != nil {
		t.Fatalf("AddStatus returned error: %v", err)
	}
	if got := tasks.NextStatusInCycle(domain.StatusComplete); got != domain.Status("Archived") {
		t.Fatalf("expected Complete to advance to Archived, got %v", got)
	}
	if got := tasks.NextStatusInCycle("Archived"); got != domain.StatusOpen {
		t.Fatalf("expected Archived to wrap to Open, got %v", got)
	}
}

// End-to-end walk across the registries: login, group seeding, group-assigned
// task visibility.
func TestRegistries_GroupAssignmentScenario(t *testing.T) {
	dir := loadedDirectory(t, [][]string{
		empRow("amy", "pw1", "Manager"),
		empRow("bob", "pw2", "Laborer"),
	})

	access := NewAccessService(dir, zerolog.Nop())
	if role, err := access.Login("amy", "pw1"); err != nil || role != domain.RoleManager {
		t.Fatalf("expected amy to log in as manager, got %v / %v", role, err)
	}

	groups := NewGroupService(dir, zerolog.Nop())
	admins, _ := groups.Group(AdminGroupName)
	amy, _ := dir.Lookup("amy")
	bob, _ := dir.Lookup("bob")
	if admins.Size() != 1 || !admins.Contains(amy) {
		t.Fatalf("expected Admins = {amy}, got %d members", admins.Size())
	}

	tasks := newTaskService()
	task, err := tasks.CreateTask(ports.CreateTaskInput{Title: "Fix pump", Status: domain.StatusOpen, Group: admins})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	if mine := tasks.ListTasksFor(amy, ports.ScopeMine); len(mine) != 1 || mine[0] != task {
		t.Fatalf("expected amy to see the Admins task, got %+v", mine)
	}
	if mine := tasks.ListTasksFor(bob, ports.ScopeMine); len(mine) != 0 {
		t.Fatalf("expected bob to see nothing, got %+v", mine)
	}
}

var _ ports.TaskService = (*TaskService)(nil)
