package ports

import (
	"context"
	"strings"
)

// Column positions in a raw employee row. The first row of any source is a
// header and is never delivered.
const (
	ColUsername = iota
	ColPassword
	ColEmployeeID
	ColFirstName
	ColLastName
	ColStreet
	ColCity
	ColState
	ColCountry
	ColSalary
	ColHireDate
	ColBirthDate
	ColDepartment
	ColRole
)

// RecordSource yields raw employee rows for directory ingestion. Rows may be
// ragged: a field beyond a row's length reads as empty, and malformed rows
// are the directory's problem, not the source's.
type RecordSource interface {
	Rows(ctx context.Context) ([][]string, error)
}

// Field returns the trimmed field at position col, or "" when the row is too
// short.
func Field(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
