package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"stepbot/config"
	"stepbot/service"
)

// Export fetches the rows once, applies the validation rules and
// writes the aggregated reports as CSV. Omitted paths print the team
// summary to stdout, mirroring the original reporting scripts.
func Export(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	output := flags.String("output", "", "path for the per-team totals CSV (stdout when empty)")
	dailyOutput := flags.String("daily-output", "", "path for the per-day breakdown CSV (skipped when empty)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Get()
	source, cleanup, err := newRowSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize row source: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	rows, err := source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch rows: %w", err)
	}

	entries := service.CollectValidEntries(rows)
	totals := service.AggregateByTeam(entries)

	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		if err := service.WriteTeamTotals(file, totals); err != nil {
			return fmt.Errorf("failed to write team totals: %w", err)
		}
		log.Printf("Report saved to %s", *output)
	} else {
		if err := service.WriteTeamTotals(os.Stdout, totals); err != nil {
			return fmt.Errorf("failed to write team totals: %w", err)
		}
	}

	if *dailyOutput != "" {
		daily := service.BuildDailyTotals(entries)
		file, err := os.Create(*dailyOutput)
		if err != nil {
			return fmt.Errorf("failed to create daily output file: %w", err)
		}
		defer file.Close()
		if err := service.WriteDailyBreakdown(file, daily); err != nil {
			return fmt.Errorf("failed to write daily breakdown: %w", err)
		}
		log.Printf("Daily breakdown saved to %s", *dailyOutput)
	}

	return nil
}
