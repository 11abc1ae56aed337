package ingest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Column names of the exported form sheet. Matching against the source
// header is normalized (whitespace-collapsed, case-insensitive), so
// trailing-space and casing variants in the sheet still resolve.
const (
	ColumnTimestamp = "Timestamp"
	ColumnDay       = "Activity Date"
	ColumnTeam      = "Team Name"
	ColumnSteps     = "Steps Count"
	ColumnEmail     = "Email Address"
)

// RawRow maps a column name to the raw cell text for one sheet row.
type RawRow map[string]string

// RowSource supplies the raw submission rows, in source order, for one
// snapshot refresh. Implementations must return a SchemaError when the
// required columns cannot be located and wrap ErrUnavailable on
// transport failures.
type RowSource interface {
	Fetch(ctx context.Context) ([]RawRow, error)
}

// ErrUnavailable marks transport/auth failures reaching the row source.
// The caller's previous snapshot stays usable; only the refresh fails.
var ErrUnavailable = errors.New("row source unavailable")

// SchemaError reports required columns missing from the source header.
// Nothing can be computed from such a source, so it aborts the refresh.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) == 0 {
		return "source has no row containing all required columns"
	}
	missing := append([]string(nil), e.Missing...)
	sort.Strings(missing)
	return "source is missing required columns: " + strings.Join(missing, ", ")
}

// RequiredColumns returns the five columns every source must provide.
func RequiredColumns() []string {
	return []string{ColumnTimestamp, ColumnDay, ColumnTeam, ColumnSteps, ColumnEmail}
}

// NormalizeColumn collapses inner whitespace and lower-cases a column
// name so header matching tolerates spacing and casing variants.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
