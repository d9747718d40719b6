package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/crewdesk/workforce-system/internal/core/domain"
	"github.com/crewdesk/workforce-system/internal/core/ports"
	"github.com/crewdesk/workforce-system/internal/metrics"
)

// DirectoryService owns the employee registry and answers login queries.
// Employees are loaded once and immutable afterwards.
type DirectoryService struct {
	logger   zerolog.Logger
	validate *validator.Validate

	employees map[string]*domain.Employee
	managers  map[string]*domain.Employee
	laborers  map[string]*domain.Employee
}

func NewDirectoryService(logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		logger:    logger,
		validate:  validator.New(),
		employees: make(map[string]*domain.Employee),
		managers:  make(map[string]*domain.Employee),
		laborers:  make(map[string]*domain.Employee),
	}
}

// employeeRecord is the trimmed view of one raw row, shaped for validation.
// Only the six required fields carry tags; everything else has a parse
// fallback instead.
type employeeRecord struct {
	Username   string `validate:"required"`
	Password   string `validate:"required"`
	EmployeeID string
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	Street     string
	City       string
	State      string
	Country    string
	Salary     string
	HireDate   string
	BirthDate  string
	Department string `validate:"required"`
	Role       string `validate:"required"`
}

func recordFromRow(row []string) employeeRecord {
	return employeeRecord{
		Username:   ports.Field(row, ports.ColUsername),
		Password:   ports.Field(row, ports.ColPassword),
		EmployeeID: ports.Field(row, ports.ColEmployeeID),
		FirstName:  ports.Field(row, ports.ColFirstName),
		LastName:   ports.Field(row, ports.ColLastName),
		Street:     ports.Field(row, ports.ColStreet),
		City:       ports.Field(row, ports.ColCity),
		State:      ports.Field(row, ports.ColState),
		Country:    ports.Field(row, ports.ColCountry),
		Salary:     ports.Field(row, ports.ColSalary),
		HireDate:   ports.Field(row, ports.ColHireDate),
		BirthDate:  ports.Field(row, ports.ColBirthDate),
		Department: ports.Field(row, ports.ColDepartment),
		Role:       ports.Field(row, ports.ColRole),
	}
}

func (r employeeRecord) employee() *domain.Employee {
	return &domain.Employee{
		Username:   r.Username,
		Password:   r.Password,
		EmployeeID: parseIntDefault(r.EmployeeID, 0),
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		Country:    r.Country,
		Salary:     parseFloatDefault(r.Salary, 0.0),
		HireDate:   r.HireDate,
		BirthDate:  r.BirthDate,
		Department: r.Department,
		Role:       r.Role,
	}
}

// Load ingests every row from src. A row missing any required field is
// skipped and reported; one bad row never aborts the batch. A source that
// cannot be read yields an empty directory and the read error.
func (s *DirectoryService) Load(ctx context.Context, src ports.RecordSource) (ports.LoadReport, error) {
	var report ports.LoadReport

	rows, err := src.Rows(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read employee records")
		return report, fmt.Errorf("read employee records: %w", err)
	}

	for i, row := range rows {
		line := i + 1
		rec := recordFromRow(row)

		if err := s.validate.Struct(rec); err != nil {
			report.Skipped = append(report.Skipped, ports.SkippedRow{Line: line, Reason: "missing required fields"})
			metrics.RowsSkippedTotal.WithLabelValues("missing_field").Inc()
			s.logger.Warn().Int("line", line).Msg("skipping employee row: missing required fields")
			continue
		}

		if _, exists := s.employees[rec.Username]; exists {
			report.Skipped = append(report.Skipped, ports.SkippedRow{Line: line, Reason: "duplicate username"})
			metrics.RowsSkippedTotal.WithLabelValues("duplicate_username").Inc()
			s.logger.Warn().Int("line", line).Str("username", rec.Username).Msg("skipping employee row: duplicate username")
			continue
		}

		e := rec.employee()
		s.employees[e.Username] = e
		if role, ok := e.LoginRole(); ok {
			switch role {
			case domain.RoleManager:
				s.managers[e.Username] = e
			case domain.RoleLaborer:
				s.laborers[e.Username] = e
			}
		}

		report.Admitted++
		metrics.RowsIngestedTotal.Inc()
	}

	s.logger.Info().
		Int("admitted", report.Admitted).
		Int("skipped", len(report.Skipped)).
		Msg("employee directory loaded")

	return report, nil
}

// ValidateLogin checks credentials by exact username lookup and exact
// plaintext password comparison. Every failure mode collapses to
// domain.ErrInvalidLogin so callers cannot tell an unknown user from a wrong
// password.
func (s *DirectoryService) ValidateLogin(username, password string) (*domain.Employee, domain.Role, error) {
	e, ok := s.employees[username]
	if !ok {
		return nil, "", domain.ErrInvalidLogin
	}
	if e.Password != password {
		return nil, "", domain.ErrInvalidLogin
	}

	role, ok := e.LoginRole()
	if !ok {
		// Role values other than Manager/Laborer are admitted into the
		// directory but cannot log in.
		return nil, "", domain.ErrInvalidLogin
	}

	return e, role, nil
}

func (s *DirectoryService) Lookup(username string) (*domain.Employee, bool) {
	e, ok := s.employees[username]
	return e, ok
}

// Employees returns every employee sorted by username.
func (s *DirectoryService) Employees() []*domain.Employee {
	return sortedByUsername(s.employees)
}

// Managers returns the manager-role subset sorted by username.
func (s *DirectoryService) Managers() []*domain.Employee {
	return sortedByUsername(s.managers)
}

// Laborers returns the laborer-role subset sorted by username.
func (s *DirectoryService) Laborers() []*domain.Employee {
	return sortedByUsername(s.laborers)
}

func sortedByUsername(m map[string]*domain.Employee) []*domain.Employee {
	out := make([]*domain.Employee, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseFloatDefault(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
