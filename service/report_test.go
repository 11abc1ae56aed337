package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepbot/models"
)

func TestFormatTotalsTable(t *testing.T) {
	totals := models.TeamTotals{"Alpha": 120, "Bravo": 300, "Charlie": 120}

	got := FormatTotalsTable(totals, TotalsTitle)
	want := TotalsTitle + "\n" +
		"1. Bravo: 300\n" +
		"2. Alpha: 120\n" +
		"3. Charlie: 120"
	assert.Equal(t, want, got, "sorted by steps descending, ties by team name")
}

func TestFormatTotalsTableEmpty(t *testing.T) {
	got := FormatTotalsTable(models.TeamTotals{}, TotalsTitle)
	assert.Equal(t, TotalsTitle+"\nNo data available.", got)
}

func TestFormatDailyTable(t *testing.T) {
	d := day(t, "10.11.2025")
	got := FormatDailyTable(d, models.TeamTotals{"Alpha": 80, "Bravo": 150})
	want := "10.11.2025\n1. Bravo: 150\n2. Alpha: 80"
	assert.Equal(t, want, got)
}

func TestFormatDailyTableEmpty(t *testing.T) {
	d := day(t, "12.11.2025")
	got := FormatDailyTable(d, nil)
	assert.Equal(t, "12.11.2025\nNo submissions for this day.", got)
}

func sampleDaily(t *testing.T) models.DailyTotals {
	return models.DailyTotals{
		day(t, "09.11.2025"): {"Alpha": 120},
		day(t, "10.11.2025"): {"Alpha": 80, "Bravo": 150},
	}
}

func TestNearestDayExactMatch(t *testing.T) {
	matched, ok := NearestDay(day(t, "10.11.2025"), sampleDaily(t))
	require.True(t, ok)
	assert.Equal(t, day(t, "10.11.2025"), matched)
}

func TestNearestDaySameMonthDayAcrossYears(t *testing.T) {
	target := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	matched, ok := NearestDay(target, sampleDaily(t))
	require.True(t, ok)
	assert.Equal(t, day(t, "10.11.2025"), matched)
}

func TestNearestDayNoMatch(t *testing.T) {
	_, ok := NearestDay(day(t, "01.12.2025"), sampleDaily(t))
	assert.False(t, ok)
}

func TestPreviousReportDayDirect(t *testing.T) {
	previous, ok := PreviousReportDay(sampleDaily(t), day(t, "11.11.2025"))
	require.True(t, ok)
	assert.Equal(t, day(t, "10.11.2025"), previous)
}

func TestPreviousReportDaySkipsGaps(t *testing.T) {
	previous, ok := PreviousReportDay(sampleDaily(t), day(t, "15.11.2025"))
	require.True(t, ok)
	assert.Equal(t, day(t, "10.11.2025"), previous)
}

func TestPreviousReportDayNoEarlierData(t *testing.T) {
	_, ok := PreviousReportDay(sampleDaily(t), day(t, "09.11.2025"))
	assert.False(t, ok)
}

func TestBuildCombinedReport(t *testing.T) {
	snapshot := &models.Snapshot{
		TeamTotals:  models.TeamTotals{"Alpha": 200, "Bravo": 150},
		DailyTotals: sampleDaily(t),
	}

	got := BuildCombinedReport(snapshot, day(t, "11.11.2025"))
	assert.Contains(t, got, TotalsTitle)
	assert.Contains(t, got, "Last day increase:")
	assert.Contains(t, got, "10.11.2025")
	assert.Contains(t, got, "1. Bravo: 150")
}

func TestBuildCombinedReportNoPreviousDay(t *testing.T) {
	snapshot := &models.Snapshot{
		TeamTotals:  models.TeamTotals{"Alpha": 50},
		DailyTotals: models.DailyTotals{},
	}

	got := BuildCombinedReport(snapshot, day(t, "10.11.2025"))
	assert.Contains(t, got, "No previous day data available.")
}

func TestWriteTeamTotals(t *testing.T) {
	var buf strings.Builder
	totals := models.TeamTotals{"Bravo": 150, "Alpha": 200}

	require.NoError(t, WriteTeamTotals(&buf, totals))
	assert.Equal(t, "team,total_steps\nAlpha,200\nBravo,150\n", buf.String())
}

func TestWriteDailyBreakdownZeroFills(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteDailyBreakdown(&buf, sampleDaily(t)))

	// Teams absent on a day render as 0 in the fixed-column table.
	want := "date,Alpha,Bravo\n" +
		"09.11.2025,120,0\n" +
		"10.11.2025,80,150\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteDailyBreakdownEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteDailyBreakdown(&buf, models.DailyTotals{}))
	assert.Equal(t, "date\n", buf.String())
}
