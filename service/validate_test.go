package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepbot/ingest"
	"stepbot/models"
)

func makeRow(submittedAt, day, team, steps, email string) ingest.RawRow {
	return ingest.RawRow{
		ingest.ColumnTimestamp: submittedAt,
		ingest.ColumnDay:       day,
		ingest.ColumnTeam:      team,
		ingest.ColumnSteps:     steps,
		ingest.ColumnEmail:     email,
	}
}

func TestWithinWindowBoundaries(t *testing.T) {
	day := func(d string) time.Time {
		parsed, err := time.ParseInLocation("02.01.2006", d, time.UTC)
		require.NoError(t, err)
		return parsed
	}
	ts := func(s string) time.Time {
		parsed, err := time.ParseInLocation("02.01.2006 15:04:05", s, time.UTC)
		require.NoError(t, err)
		return parsed
	}

	tests := []struct {
		name        string
		submittedAt time.Time
		reportDate  time.Time
		want        bool
	}{
		{"same day", ts("09.11.2025 16:47:51"), day("09.11.2025"), true},
		{"one day late", ts("10.11.2025 08:00:00"), day("09.11.2025"), true},
		{"two days late", ts("11.11.2025 23:59:59"), day("09.11.2025"), true},
		{"three days late", ts("12.11.2025 00:00:01"), day("09.11.2025"), false},
		{"four days late", ts("09.11.2025 10:00:00"), day("05.11.2025"), false},
		{"future report date", ts("09.11.2025 10:00:00"), day("10.11.2025"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withinWindow(tt.submittedAt, tt.reportDate))
		})
	}
}

func TestCollectValidEntriesSingleRow(t *testing.T) {
	rows := []ingest.RawRow{
		makeRow("09.11.2025 16:47:51", "09.11.2025", "Alpha", "100", "a@x.com"),
	}

	entries := CollectValidEntries(rows)
	require.Len(t, entries, 1)

	key := models.EntryKey{
		SubmitterKey: "a@x.com",
		ReportDate:   time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC),
	}
	entry, ok := entries[key]
	require.True(t, ok)
	assert.Equal(t, "Alpha", entry.Team)
	assert.Equal(t, int64(100), entry.Steps)
}

func TestCollectValidEntriesFirstSubmissionWins(t *testing.T) {
	early := makeRow("09.11.2025 16:00:00", "09.11.2025", "Alpha", "100", "a@x.com")
	late := makeRow("09.11.2025 17:00:00", "09.11.2025", "Bravo", "999", "a@x.com")

	key := models.EntryKey{
		SubmitterKey: "a@x.com",
		ReportDate:   time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC),
	}

	// The earlier filing wins regardless of input order.
	forward := CollectValidEntries([]ingest.RawRow{early, late})
	require.Len(t, forward, 1)
	assert.Equal(t, int64(100), forward[key].Steps)
	assert.Equal(t, "Alpha", forward[key].Team)

	reversed := CollectValidEntries([]ingest.RawRow{late, early})
	require.Len(t, reversed, 1)
	assert.Equal(t, int64(100), reversed[key].Steps)
	assert.Equal(t, "Alpha", reversed[key].Team)
}

func TestCollectValidEntriesStaleRowExcluded(t *testing.T) {
	// Filed four days after the claimed activity date: excluded entirely.
	rows := []ingest.RawRow{
		makeRow("09.11.2025 10:00:00", "05.11.2025", "Alpha", "100", "a@x.com"),
	}

	entries := CollectValidEntries(rows)
	assert.Empty(t, entries)
	assert.Empty(t, AggregateByTeam(entries))
}

func TestCollectValidEntriesMalformedTolerance(t *testing.T) {
	good := []ingest.RawRow{
		makeRow("09.11.2025 16:00:00", "09.11.2025", "Alpha", "100", "a@x.com"),
		makeRow("09.11.2025 17:00:00", "09.11.2025", "Bravo", "200", "b@x.com"),
	}
	withBad := append([]ingest.RawRow{}, good...)
	withBad = append(withBad, makeRow("09.11.2025 18:00:00", "09.11.2025", "Charlie", "many", "c@x.com"))

	assert.True(t, reflect.DeepEqual(CollectValidEntries(good), CollectValidEntries(withBad)),
		"one malformed row must not change the canonical entry set")
}

func TestCollectValidEntriesIndependentDays(t *testing.T) {
	// The same submitter may report for different teams on different
	// days; each (submitter, day) key is independent.
	rows := []ingest.RawRow{
		makeRow("09.11.2025 16:00:00", "09.11.2025", "Alpha", "100", "a@x.com"),
		makeRow("10.11.2025 16:00:00", "10.11.2025", "Bravo", "200", "a@x.com"),
	}

	entries := CollectValidEntries(rows)
	require.Len(t, entries, 2)

	totals := AggregateByTeam(entries)
	assert.Equal(t, models.TeamTotals{"Alpha": 100, "Bravo": 200}, totals)
}

func TestCollectValidEntriesIdempotent(t *testing.T) {
	rows := []ingest.RawRow{
		makeRow("09.11.2025 16:00:00", "09.11.2025", "Alpha", "100", "a@x.com"),
		makeRow("09.11.2025 17:00:00", "09.11.2025", "Alpha", "999", "a@x.com"),
		makeRow("10.11.2025 09:00:00", "09.11.2025", "Bravo", "300", "b@x.com"),
		makeRow("10.11.2025 09:30:00", "10.11.2025", "Bravo", "400", "b@x.com"),
	}

	first := CollectValidEntries(rows)
	second := CollectValidEntries(rows)
	assert.True(t, reflect.DeepEqual(first, second))
	assert.True(t, reflect.DeepEqual(AggregateByTeam(first), AggregateByTeam(second)))
	assert.True(t, reflect.DeepEqual(BuildDailyTotals(first), BuildDailyTotals(second)))
}

func TestCollectValidEntriesIdenticalRowsCollapse(t *testing.T) {
	row := makeRow("09.11.2025 16:00:00", "09.11.2025", "Alpha", "100", "a@x.com")
	entries := CollectValidEntries([]ingest.RawRow{row, row, row})
	assert.Len(t, entries, 1)
}
