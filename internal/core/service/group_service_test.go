package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
)

func newGroupFixture(t *testing.T) (*DirectoryService, *GroupService) {
	t.Helper()
	dir := loadedDirectory(t, [][]string{
		empRow("amy", "pw1", "Manager"),
		empRow("max", "pw2", "Manager"),
		empRow("bob", "pw3", "Laborer"),
	})
	return dir, NewGroupService(dir, zerolog.Nop())
}

func TestGroupService_SeedsAdminsFromManagers(t *testing.T) {
	dir, groups := newGroupFixture(t)

	admins, ok := groups.Group(AdminGroupName)
	if !ok {
		t.Fatalf("expected Admins group to exist")
	}
	if admins.Size() != 2 {
		t.Fatalf("expected 2 seeded members, got %d", admins.Size())
	}
	amy, _ := dir.Lookup("amy")
	bob, _ := dir.Lookup("bob")
	if !admins.Contains(amy) {
		t.Fatalf("expected amy in Admins")
	}
	if admins.Contains(bob) {
		t.Fatalf("laborer bob must not be seeded into Admins")
	}
}

func TestGroupService_AdminsSeedIsSnapshot(t *testing.T) {
	dir, groups := newGroupFixture(t)

	// Managers admitted after construction do not retroactively join Admins.
	if _, err := dir.Load(context.Background(), &stubSource{rows: [][]string{
		empRow("late", "pw", "Manager"),
	}}); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	admins, _ := groups.Group(AdminGroupName)
	if admins.Size() != 2 {
		t.Fatalf("expected snapshot membership of 2, got %d", admins.Size())
	}
}

func TestGroupService_CreateGroup(t *testing.T) {
	_, groups := newGroupFixture(t)

	g, err := groups.CreateGroup("Night Shift")
	if err != nil {
		t.Fatalf("CreateGroup returned error: %v", err)
	}
	if g.Name != "Night Shift" || g.Size() != 0 {
		t.Fatalf("expected empty named group, got %+v", g)
	}

	if _, err := groups.CreateGroup("Night Shift"); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if _, err := groups.CreateGroup("   "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank name, got %v", err)
	}
}

func TestGroupService_DeleteGroup(t *testing.T) {
	_, groups := newGroupFixture(t)
	if _, err := groups.CreateGroup("Temp"); err != nil {
		t.Fatalf("CreateGroup returned error: %v", err)
	}

	if err := groups.DeleteGroup(AdminGroupName); !errors.Is(err, domain.ErrProtectedGroup) {
		t.Fatalf("Admins must be protected, got %v", err)
	}
	if err := groups.DeleteGroup("Missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := groups.DeleteGroup("Temp"); err != nil {
		t.Fatalf("DeleteGroup returned error: %v", err)
	}
	if _, ok := groups.Group("Temp"); ok {
		t.Fatalf("expected Temp to be gone")
	}
	// The name is free again.
	if _, err := groups.CreateGroup("Temp"); err != nil {
		t.Fatalf("expected name to be reusable after delete: %v", err)
	}
}

func TestGroupService_MembershipIsIdempotent(t *testing.T) {
	dir, groups := newGroupFixture(t)
	bob, _ := dir.Lookup("bob")

	if _, err := groups.CreateGroup("Crew"); err != nil {
		t.Fatalf("CreateGroup returned error: %v", err)
	}

	if err := groups.AddMember("Crew", bob); err != nil {
		t.Fatalf("AddMember returned error: %v", err)
	}
	if err := groups.AddMember("Crew", bob); err != nil {
		t.Fatalf("adding an existing member must be a no-op: %v", err)
	}
	g, _ := groups.Group("Crew")
	if g.Size() != 1 {
		t.Fatalf("expected single membership, got %d", g.Size())
	}

	if err := groups.RemoveMember("Crew", bob); err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if err := groups.RemoveMember("Crew", bob); err != nil {
		t.Fatalf("removing an absent member must be a no-op: %v", err)
	}
	if g.Size() != 0 {
		t.Fatalf("expected empty group, got %d members", g.Size())
	}

	if err := groups.AddMember("Missing", bob); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown group, got %v", err)
	}
}

func TestGroupService_ListGroups_InsertionOrder(t *testing.T) {
	_, groups := newGroupFixture(t)
	for _, name := range []string{"Beta", "Alpha", "Gamma"} {
		if _, err := groups.CreateGroup(name); err != nil {
			t.Fatalf("CreateGroup(%s) returned error: %v", name, err)
		}
	}

	got := groups.ListGroups()
	want := []string{AdminGroupName, "Beta", "Alpha", "Gamma"}
	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(got))
	}
	for i, g := range got {
		if g.Name != want[i] {
			t.Fatalf("expected order %v, got %q at %d", want, g.Name, i)
		}
	}
}

var _ ports.GroupService = (*GroupService)(nil)
