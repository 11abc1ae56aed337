package ingest

import (
	"context"
	"encoding/csv"
	"os"
	"strings"
)

// CSVSource reads submissions from a downloaded form export on disk.
type CSVSource struct {
	path string
}

// NewCSVSource creates a row source backed by a CSV file.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Fetch reads the whole file and resolves its header. Exports arrive
// with a UTF-8 BOM, which is stripped before parsing.
func (s *CSVSource) Fetch(ctx context.Context) ([]RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, unavailable("read csv file", err)
	}

	content := strings.TrimPrefix(string(data), "\ufeff")
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1 // ragged rows are padded during mapping

	values, err := reader.ReadAll()
	if err != nil {
		return nil, unavailable("parse csv file", err)
	}

	return tableToRows(values)
}
