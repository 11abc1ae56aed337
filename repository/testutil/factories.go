package testutil

import "stepbot/ingest"

// RawRowOption customizes a factory-built row.
type RawRowOption func(ingest.RawRow)

// NewRawRow builds a valid submission row with sensible defaults.
func NewRawRow(opts ...RawRowOption) ingest.RawRow {
	row := ingest.RawRow{
		ingest.ColumnTimestamp: "09.11.2025 16:47:51",
		ingest.ColumnDay:       "09.11.2025",
		ingest.ColumnTeam:      "Alpha",
		ingest.ColumnSteps:     "100",
		ingest.ColumnEmail:     "a@x.com",
	}
	for _, opt := range opts {
		opt(row)
	}
	return row
}

// WithTimestamp sets the filing timestamp cell.
func WithTimestamp(value string) RawRowOption {
	return func(row ingest.RawRow) { row[ingest.ColumnTimestamp] = value }
}

// WithDay sets the activity date cell.
func WithDay(value string) RawRowOption {
	return func(row ingest.RawRow) { row[ingest.ColumnDay] = value }
}

// WithTeam sets the team name cell.
func WithTeam(value string) RawRowOption {
	return func(row ingest.RawRow) { row[ingest.ColumnTeam] = value }
}

// WithSteps sets the raw step count cell.
func WithSteps(value string) RawRowOption {
	return func(row ingest.RawRow) { row[ingest.ColumnSteps] = value }
}

// WithEmail sets the submitter email cell.
func WithEmail(value string) RawRowOption {
	return func(row ingest.RawRow) { row[ingest.ColumnEmail] = value }
}
