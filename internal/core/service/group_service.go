package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
	"github.com/crewdesk/workforce-system/internal/metrics"
)

// AdminGroupName is the protected default group, seeded with every manager at
// startup.
const AdminGroupName = "Admins"

// GroupService owns the group registry. Groups are listed in insertion
// order; Admins is always first.
type GroupService struct {
	logger zerolog.Logger
	groups []*domain.Group
	byName map[string]*domain.Group
}

// NewGroupService seeds the Admins group from a snapshot of the directory's
// current managers. Later directory changes do not retroactively update
// Admins membership.
func NewGroupService(dir ports.DirectoryService, logger zerolog.Logger) *GroupService {
	s := &GroupService{
		logger: logger,
		byName: make(map[string]*domain.Group),
	}

	admins := domain.NewGroup(AdminGroupName)
	for _, m := range dir.Managers() {
		admins.AddMember(m)
	}
	s.groups = append(s.groups, admins)
	s.byName[AdminGroupName] = admins

	logger.Info().Int("members", admins.Size()).Msg("seeded administrative group")
	return s
}

// CreateGroup registers a new empty group. Name collisions are exact-match.
func (s *GroupService) CreateGroup(name string) (*domain.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("group name: %w", domain.ErrValidation)
	}
	if _, exists := s.byName[name]; exists {
		return nil, fmt.Errorf("group %q: %w", name, domain.ErrDuplicateName)
	}

	g := domain.NewGroup(name)
	s.groups = append(s.groups, g)
	s.byName[name] = g

	metrics.GroupsCreatedTotal.Inc()
	s.logger.Info().Str("group", name).Msg("group created")
	return g, nil
}

// DeleteGroup removes a group by name. The administrative group can never be
// deleted.
func (s *GroupService) DeleteGroup(name string) error {
	if name == AdminGroupName {
		return fmt.Errorf("group %q: %w", name, domain.ErrProtectedGroup)
	}
	g, exists := s.byName[name]
	if !exists {
		return fmt.Errorf("group %q: %w", name, domain.ErrNotFound)
	}

	delete(s.byName, name)
	for i, cur := range s.groups {
		if cur == g {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			break
		}
	}

	s.logger.Info().Str("group", name).Msg("group deleted")
	return nil
}

// AddMember adds e to the named group. Adding an existing member is a no-op.
func (s *GroupService) AddMember(groupName string, e *domain.Employee) error {
	g, exists := s.byName[groupName]
	if !exists {
		return fmt.Errorf("group %q: %w", groupName, domain.ErrNotFound)
	}
	g.AddMember(e)
	return nil
}

// RemoveMember removes e from the named group. Removing an absent member is a
// no-op.
func (s *GroupService) RemoveMember(groupName string, e *domain.Employee) error {
	g, exists := s.byName[groupName]
	if !exists {
		return fmt.Errorf("group %q: %w", groupName, domain.ErrNotFound)
	}
	g.RemoveMember(e)
	return nil
}

func (s *GroupService) Group(name string) (*domain.Group, bool) {
	g, ok := s.byName[name]
	return g, ok
}

// ListGroups returns groups in insertion order.
func (s *GroupService) ListGroups() []*domain.Group {
	out := make([]*domain.Group, len(s.groups))
	copy(out, s.groups)
	return out
}
