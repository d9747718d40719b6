package ports

import "github.com/crewdesk/workforce-system/internal/core/domain"

// GroupService owns the group registry. The default administrative group is
// seeded at construction and can never be deleted.
type GroupService interface {
	// CreateGroup registers a new empty group. Exact-name collisions fail
	// with domain.ErrDuplicateName; an empty name fails with
	// domain.ErrValidation.
	CreateGroup(name string) (*domain.Group, error)

	// DeleteGroup removes a group. The administrative group fails with
	// domain.ErrProtectedGroup; unknown names with domain.ErrNotFound.
	DeleteGroup(name string) error

	// AddMember and RemoveMember are idempotent; only an unknown group name
	// is an error.
	AddMember(groupName string, e *domain.Employee) error
	RemoveMember(groupName string, e *domain.Employee) error

	Group(name string) (*domain.Group, bool)

	// ListGroups returns groups in insertion order.
	ListGroups() []*domain.Group
}
