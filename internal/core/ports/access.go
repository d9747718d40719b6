package ports

import "github.com/crewdesk/workforce-system/internal/core/domain"

// AccessService is the session facade: it tracks the authenticated employee
// and answers role-scoped capability questions for the presentation layer.
// Exactly one session subject exists at a time.
type AccessService interface {
	// Login validates the credentials against the directory and, on success,
	// records the employee as the session subject.
	Login(username, password string) (domain.Role, error)

	// Current returns the session subject, or nil before any successful
	// login and after Logout.
	Current() *domain.Employee

	// Role returns the login role of the session subject, or "" when nobody
	// is logged in.
	Role() domain.Role

	Logout()

	// CanManage reports whether the session subject may use manager-only
	// operations.
	CanManage() bool
}
