package service

import "stepbot/models"

// AggregateByTeam sums canonical entries into per-team step totals.
// Teams with no valid entries simply do not appear.
func AggregateByTeam(entries models.EntrySet) models.TeamTotals {
	totals := make(models.TeamTotals)
	for _, entry := range entries {
		totals[entry.Team] += entry.Steps
	}
	return totals
}

// BuildDailyTotals groups canonical entries by report date, then by
// team. Summing a team's value over every day reproduces its
// AggregateByTeam total exactly, since both derive from the same
// entry set.
func BuildDailyTotals(entries models.EntrySet) models.DailyTotals {
	daily := make(models.DailyTotals)
	for key, entry := range entries {
		teams, ok := daily[key.ReportDate]
		if !ok {
			teams = make(models.TeamTotals)
			daily[key.ReportDate] = teams
		}
		teams[entry.Team] += entry.Steps
	}
	return daily
}
