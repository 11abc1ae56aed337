package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"stepbot/models"
)

// TotalsTitle heads the per-team leaderboard listing.
const TotalsTitle = "Teams — total steps"

type rankedRow struct {
	Team  string
	Steps int64
}

// rankRows orders teams by steps descending; equal step counts fall
// back to team name so rendering stays byte-for-byte reproducible.
func rankRows(totals models.TeamTotals) []rankedRow {
	rows := make([]rankedRow, 0, len(totals))
	for team, steps := range totals {
		rows = append(rows, rankedRow{Team: team, Steps: steps})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Steps != rows[j].Steps {
			return rows[i].Steps > rows[j].Steps
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}

// FormatTotalsTable renders a numbered per-team listing under a title.
func FormatTotalsTable(totals models.TeamTotals, title string) string {
	if len(totals) == 0 {
		return title + "\nNo data available."
	}

	lines := []string{title}
	for idx, row := range rankRows(totals) {
		lines = append(lines, fmt.Sprintf("%d. %s: %d", idx+1, row.Team, row.Steps))
	}
	return strings.Join(lines, "\n")
}

// FormatDailyTable renders the per-team listing for one day, labeled
// with the day in DD.MM.YYYY form.
func FormatDailyTable(day time.Time, totals models.TeamTotals) string {
	label := day.Format(dateLayout)
	if len(totals) == 0 {
		return label + "\nNo submissions for this day."
	}

	lines := []string{label}
	for idx, row := range rankRows(totals) {
		lines = append(lines, fmt.Sprintf("%d. %s: %d", idx+1, row.Team, row.Steps))
	}
	return strings.Join(lines, "\n")
}

// NearestDay resolves a user-given day against the known data: an
// exact match wins, otherwise the earliest known date sharing the same
// month and day (across years). The false return means no match.
func NearestDay(target time.Time, daily models.DailyTotals) (time.Time, bool) {
	target = models.DateOf(target)
	if _, ok := daily[target]; ok {
		return target, true
	}

	for _, day := range sortedDays(daily) {
		if day.Month() == target.Month() && day.Day() == target.Day() {
			return day, true
		}
	}
	return time.Time{}, false
}

// PreviousReportDay finds the most recent day strictly before the
// reference date that has data.
func PreviousReportDay(daily models.DailyTotals, today time.Time) (time.Time, bool) {
	today = models.DateOf(today)
	previous := today.AddDate(0, 0, -1)
	if _, ok := daily[previous]; ok {
		return previous, true
	}

	var best time.Time
	var found bool
	for day := range daily {
		if day.Before(today) && (!found || day.After(best)) {
			best = day
			found = true
		}
	}
	return best, found
}

// BuildCombinedReport renders the full report message: the leaderboard
// followed by the last day before today that has data.
func BuildCombinedReport(snapshot *models.Snapshot, today time.Time) string {
	totalsText := FormatTotalsTable(snapshot.TeamTotals, TotalsTitle)

	previousDay, ok := PreviousReportDay(snapshot.DailyTotals, today)
	if !ok {
		return totalsText + "\n\nLast day increase:\nNo previous day data available."
	}

	dailyText := FormatDailyTable(previousDay, snapshot.DailyTotals[previousDay])
	return totalsText + "\n\nLast day increase:\n" + dailyText
}

// WriteTeamTotals emits the per-team summary as CSV, teams sorted by
// name.
func WriteTeamTotals(w io.Writer, totals models.TeamTotals) error {
	teams := make([]string, 0, len(totals))
	for team := range totals {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"team", "total_steps"}); err != nil {
		return err
	}
	for _, team := range teams {
		if err := writer.Write([]string{team, strconv.FormatInt(totals[team], 10)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteDailyBreakdown emits the day-by-team matrix as CSV: one column
// per team (sorted), one row per known date (ascending), zero-filled
// where a team has no entries for a day.
func WriteDailyBreakdown(w io.Writer, daily models.DailyTotals) error {
	teamSet := make(map[string]struct{})
	for _, totals := range daily {
		for team := range totals {
			teamSet[team] = struct{}{}
		}
	}
	teams := make([]string, 0, len(teamSet))
	for team := range teamSet {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	writer := csv.NewWriter(w)
	if err := writer.Write(append([]string{"date"}, teams...)); err != nil {
		return err
	}
	for _, day := range sortedDays(daily) {
		record := make([]string, 0, len(teams)+1)
		record = append(record, day.Format(dateLayout))
		for _, team := range teams {
			record = append(record, strconv.FormatInt(daily[day][team], 10))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func sortedDays(daily models.DailyTotals) []time.Time {
	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
