package domain

import "strings"

// Role is the login role resolved for an authenticated employee.
type Role string

const (
	RoleManager Role = "Manager"
	RoleLaborer Role = "Laborer"
)

// Employee is an immutable directory record. Instances are created once at
// load time and shared by reference; the directory owns them.
//
// Password holds the plaintext credential exactly as it appears in the data
// source and is compared with string equality. Current behavior of the
// system, not a recommendation.
type Employee struct {
	Username   string
	Password   string
	EmployeeID int
	FirstName  string
	LastName   string
	Street     string
	City       string
	State      string
	Country    string
	Salary     float64
	HireDate   string
	BirthDate  string
	Department string
	Role       string
}

// LoginRole resolves the free-text role field to a login role. The directory
// accepts any role value, but only Manager and Laborer (case-insensitive) can
// authenticate.
func (e *Employee) LoginRole() (Role, bool) {
	switch {
	case strings.EqualFold(e.Role, string(RoleManager)):
		return RoleManager, true
	case strings.EqualFold(e.Role, string(RoleLaborer)):
		return RoleLaborer, true
	}
	return "", false
}

// IsManager reports whether the employee holds a manager-equivalent role.
func (e *Employee) IsManager() bool {
	r, ok := e.LoginRole()
	return ok && r == RoleManager
}

// DisplayName is the listing label: "First Last - Department".
func (e *Employee) DisplayName() string {
	return e.FirstName + " " + e.LastName + " - " + e.Department
}
