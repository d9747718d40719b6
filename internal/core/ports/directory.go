package ports

import (
	"context"

	"github.com/crewdesk/workforce-system/internal/core/domain"
)

// SkippedRow records one ingestion-time rejection. Line numbers are 1-based
// and count data rows, not the header.
type SkippedRow struct {
	Line   int
	Reason string
}

// LoadReport summarises one directory load. Row-level failures never abort a
// load; they are aggregated here.
type LoadReport struct {
	Admitted int
	Skipped  []SkippedRow
}

// DirectoryService owns the employee registry: ingestion, indexing, and login
// checks.
type DirectoryService interface {
	// Load ingests every row from src. Rows missing a required field are
	// skipped and reported; a source that cannot be read at all yields an
	// empty directory and a non-nil error alongside the (empty) report.
	Load(ctx context.Context, src RecordSource) (LoadReport, error)

	// ValidateLogin checks the credentials and resolves the login role.
	// Unknown username, wrong password, and unrecognised role all return
	// domain.ErrInvalidLogin.
	ValidateLogin(username, password string) (*domain.Employee, domain.Role, error)

	Lookup(username string) (*domain.Employee, bool)

	// Listing accessors return username-sorted slices for display
	// determinism.
	Employees() []*domain.Employee
	Managers() []*domain.Employee
	Laborers() []*domain.Employee
}
