// Package ingest provides record sources for directory loading.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/crewdesk/workforce-system/internal/core/ports"
)

// CSVSource reads employee rows from a CSV file. The first row is a header
// and is never delivered. Rows may have fewer fields than the column layout
// expects; the directory treats missing positions as empty.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Rows reads the whole file in one pass. An unreadable file returns a nil
// row set and the open/read error; a file with only a header returns an
// empty row set.
func (s *CSVSource) Rows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are legal

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Drop the header row.
	return records[1:], nil
}

var _ ports.RecordSource = (*CSVSource)(nil)
