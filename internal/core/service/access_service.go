package service

import (
	"github.com/rs/zerolog"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
	"github.com/crewdesk/workforce-system/internal/metrics"
)

// AccessService is the session facade. It delegates credential checks to the
// directory and tracks the single session subject; the presentation layer
// asks it who is logged in and what they may do.
type AccessService struct {
	dir    ports.DirectoryService
	logger zerolog.Logger

	subject *domain.Employee
	role    domain.Role
}

func NewAccessService(dir ports.DirectoryService, logger zerolog.Logger) *AccessService {
	return &AccessService{dir: dir, logger: logger}
}

// Login validates the credentials and records the employee as the session
// subject on success. A failed login leaves any existing session untouched.
func (s *AccessService) Login(username, password string) (domain.Role, error) {
	e, role, err := s.dir.ValidateLogin(username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		s.logger.Info().Str("username", username).Msg("login rejected")
		return "", err
	}

	s.subject = e
	s.role = role

	switch role {
	case domain.RoleManager:
		metrics.LoginsTotal.WithLabelValues("manager").Inc()
	case domain.RoleLaborer:
		metrics.LoginsTotal.WithLabelValues("laborer").Inc()
	}
	s.logger.Info().Str("username", username).Str("role", string(role)).Msg("login accepted")

	return role, nil
}

// Current returns the session subject, or nil when nobody is logged in.
func (s *AccessService) Current() *domain.Employee {
	return s.subject
}

// Role returns the login role of the session subject, or "" when nobody is
// logged in.
func (s *AccessService) Role() domain.Role {
	return s.role
}

// Logout clears the session subject.
func (s *AccessService) Logout() {
	if s.subject != nil {
		s.logger.Info().Str("username", s.subject.Username).Msg("logout")
	}
	s.subject = nil
	s.role = ""
}

// CanManage reports whether the session subject may use manager-only
// operations.
func (s *AccessService) CanManage() bool {
	return s.subject != nil && s.role == domain.RoleManager
}
