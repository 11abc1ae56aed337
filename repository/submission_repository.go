package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stepbot/database"
	"stepbot/ingest"
)

// SubmissionRepository reads raw form rows out of Postgres and doubles
// as the postgres RowSource. Deployments that sync form responses into
// a table use it instead of hitting the Sheets API on every refresh.
type SubmissionRepository struct {
	db *database.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *database.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Fetch returns every stored row in insertion order, keyed by the
// canonical column names. Insertion order is the source order the
// first-submission-wins rule depends on.
func (r *SubmissionRepository) Fetch(ctx context.Context) ([]ingest.RawRow, error) {
	query := `
		SELECT submitted_at, activity_date, team_name, steps, email
		FROM form_submissions
		ORDER BY id ASC
	`

	pgxRows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query form submissions: %w: %w", ingest.ErrUnavailable, err)
	}
	defer pgxRows.Close()

	var rows []ingest.RawRow
	for pgxRows.Next() {
		var submittedAt, activityDate, teamName, steps, email string
		if err := pgxRows.Scan(&submittedAt, &activityDate, &teamName, &steps, &email); err != nil {
			return nil, fmt.Errorf("failed to scan form submission: %w", err)
		}
		rows = append(rows, ingest.RawRow{
			ingest.ColumnTimestamp: submittedAt,
			ingest.ColumnDay:       activityDate,
			ingest.ColumnTeam:      teamName,
			ingest.ColumnSteps:     steps,
			ingest.ColumnEmail:     email,
		})
	}
	if err := pgxRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read form submissions: %w: %w", ingest.ErrUnavailable, err)
	}

	return rows, nil
}

// ReplaceAll swaps the stored rows for a fresh sync from another
// source, atomically. Rows are inserted in slice order so a later
// Fetch replays them in the same order.
func (r *SubmissionRepository) ReplaceAll(ctx context.Context, rows []ingest.RawRow) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM form_submissions`); err != nil {
			return fmt.Errorf("failed to clear form submissions: %w", err)
		}

		query := `
			INSERT INTO form_submissions (submitted_at, activity_date, team_name, steps, email)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, row := range rows {
			_, err := tx.Exec(ctx, query,
				row[ingest.ColumnTimestamp],
				row[ingest.ColumnDay],
				row[ingest.ColumnTeam],
				row[ingest.ColumnSteps],
				row[ingest.ColumnEmail],
			)
			if err != nil {
				return fmt.Errorf("failed to insert form submission: %w", err)
			}
		}
		return nil
	})
}
