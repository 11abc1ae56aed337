package models

import "time"

// Submission is a single parsed step report from the raw sheet.
// Immutable once built; discarded after aggregation.
type Submission struct {
	SubmittedAt  time.Time // when the form row was filed
	ReportDate   time.Time // the calendar day the steps are claimed for (UTC midnight)
	Team         string
	Steps        int64
	SubmitterKey string // trimmed, lower-cased email
}

// EntryKey identifies one submitter/day pair.
type EntryKey struct {
	SubmitterKey string
	ReportDate   time.Time
}

// Entry is the winning submission kept for one EntryKey.
type Entry struct {
	SubmittedAt time.Time
	Team        string
	Steps       int64
}

// EntrySet holds at most one entry per (submitter, report date).
type EntrySet map[EntryKey]Entry

// TeamTotals maps team name to cumulative steps.
type TeamTotals map[string]int64

// DailyTotals maps report date (UTC midnight) to per-team totals for
// that day. Teams with no valid entries on a day are absent, not zero.
type DailyTotals map[time.Time]TeamTotals

// Snapshot is one immutable computed view of all aggregates. It is
// replaced wholesale on refresh, never mutated in place.
type Snapshot struct {
	Entries     EntrySet
	TeamTotals  TeamTotals
	DailyTotals DailyTotals
	FetchedAt   time.Time
}

// DateOf truncates t to its calendar day at UTC midnight, giving a
// comparable map key with no time component.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
