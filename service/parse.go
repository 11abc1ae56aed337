package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stepbot/ingest"
	"stepbot/models"
)

const (
	timestampLayout = "02.01.2006 15:04:05"
	dateLayout      = "02.01.2006"
)

// ErrMalformedRow marks a row that cannot be parsed as a submission.
// Such rows are skipped at the batch level, never surfaced per row.
var ErrMalformedRow = errors.New("malformed row")

// ParseSubmission builds a typed submission from one raw sheet row.
// Pure function: no side effects, no range checks on the step count.
func ParseSubmission(row ingest.RawRow) (models.Submission, error) {
	submittedAtRaw, err := fieldValue(row, ingest.ColumnTimestamp)
	if err != nil {
		return models.Submission{}, err
	}
	reportDateRaw, err := fieldValue(row, ingest.ColumnDay)
	if err != nil {
		return models.Submission{}, err
	}
	teamRaw, err := fieldValue(row, ingest.ColumnTeam)
	if err != nil {
		return models.Submission{}, err
	}
	stepsRaw, err := fieldValue(row, ingest.ColumnSteps)
	if err != nil {
		return models.Submission{}, err
	}
	emailRaw, err := fieldValue(row, ingest.ColumnEmail)
	if err != nil {
		return models.Submission{}, err
	}

	submittedAt, err := time.ParseInLocation(timestampLayout, strings.TrimSpace(submittedAtRaw), time.UTC)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedRow, submittedAtRaw)
	}

	reportDate, err := time.ParseInLocation(dateLayout, strings.TrimSpace(reportDateRaw), time.UTC)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: bad activity date %q", ErrMalformedRow, reportDateRaw)
	}

	steps, err := strconv.ParseInt(strings.TrimSpace(stepsRaw), 10, 64)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: bad step count %q", ErrMalformedRow, stepsRaw)
	}

	team := strings.TrimSpace(teamRaw)
	email := strings.ToLower(strings.TrimSpace(emailRaw))
	if team == "" || email == "" {
		return models.Submission{}, fmt.Errorf("%w: empty team or email", ErrMalformedRow)
	}

	return models.Submission{
		SubmittedAt:  submittedAt,
		ReportDate:   models.DateOf(reportDate),
		Team:         team,
		Steps:        steps,
		SubmitterKey: email,
	}, nil
}

// fieldValue resolves a required column in a raw row, tolerating
// whitespace and casing variants in the row's keys.
func fieldValue(row ingest.RawRow, column string) (string, error) {
	if value, ok := row[column]; ok {
		return value, nil
	}

	normalized := ingest.NormalizeColumn(column)
	for key, value := range row {
		if ingest.NormalizeColumn(key) == normalized {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: missing field %q", ErrMalformedRow, column)
}
