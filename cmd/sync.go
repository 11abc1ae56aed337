package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"

	"stepbot/config"
	"stepbot/database"
	"stepbot/ingest"
	"stepbot/repository"
)

// Sync pulls raw rows from the sheet or CSV export and replaces the
// Postgres mirror, so deployments using the postgres row source can
// refresh without hitting the Sheets API.
func Sync(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("sync", flag.ContinueOnError)
	from := flags.String("from", config.SourceSheets, "source to sync from: sheets or csv")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Get()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for sync")
	}

	var source ingest.RowSource
	switch *from {
	case config.SourceSheets:
		source = ingest.NewSheetsSource(cfg.SpreadsheetID, cfg.SheetName, cfg.SheetRange, cfg.ServiceAccountFile)
	case config.SourceCSV:
		source = ingest.NewCSVSource(cfg.CSVPath)
	default:
		return fmt.Errorf("cannot sync from %q", *from)
	}

	rows, err := source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch rows: %w", err)
	}

	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repo := repository.NewSubmissionRepository(db)
	if err := repo.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("failed to replace stored rows: %w", err)
	}

	log.Printf("Synced %d raw rows into the submissions store", len(rows))
	return nil
}
