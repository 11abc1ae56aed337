package service

import (
	"time"

	"stepbot/ingest"
	"stepbot/models"
)

// submissionGraceDays is how many days a submitter has to file steps
// for a past day. Filing on the activity day itself counts as day zero.
const submissionGraceDays = 3

// withinWindow reports whether a submission was filed inside the 0-2
// day grace period. Future-dated activity (report date after the
// filing day) is never valid, and neither is a report filed three or
// more days late.
func withinWindow(submittedAt, reportDate time.Time) bool {
	submissionDay := models.DateOf(submittedAt)
	if reportDate.After(submissionDay) {
		return false
	}

	delay := int(submissionDay.Sub(reportDate).Hours() / 24)
	return delay < submissionGraceDays
}

// CollectValidEntries folds raw rows into the canonical entry set: one
// winning submission per (submitter, report date). Rows are processed
// in source order; malformed rows and rows outside the validity window
// are skipped without aborting the batch.
//
// When a key repeats, the submission with the earliest filing time
// wins. The first report stands: later corrections for the same day
// are ignored even when they name a different team or step count.
func CollectValidEntries(rows []ingest.RawRow) models.EntrySet {
	entries := make(models.EntrySet)
	for _, row := range rows {
		submission, err := ParseSubmission(row)
		if err != nil {
			continue
		}
		if !withinWindow(submission.SubmittedAt, submission.ReportDate) {
			continue
		}

		key := models.EntryKey{
			SubmitterKey: submission.SubmitterKey,
			ReportDate:   submission.ReportDate,
		}
		current, ok := entries[key]
		if !ok || submission.SubmittedAt.Before(current.SubmittedAt) {
			entries[key] = models.Entry{
				SubmittedAt: submission.SubmittedAt,
				Team:        submission.Team,
				Steps:       submission.Steps,
			}
		}
	}
	return entries
}
