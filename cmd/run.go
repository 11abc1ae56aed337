package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"stepbot/bot"
	"stepbot/config"
	"stepbot/database"
	"stepbot/events"
	"stepbot/ingest"
	"stepbot/repository"
	"stepbot/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting step marathon bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize the row source
	source, cleanup, err := newRowSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize row source: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}
	log.Printf("Row source initialized (%s)", cfg.RowSource)

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize snapshot service
	snapshots := service.NewSnapshotService(source, cfg.CacheTTL, eventBus)
	log.Printf("Snapshot cache initialized (ttl %s)", cfg.CacheTTL)

	// Initialize Discord bot
	botConfig := bot.Config{
		Token:           cfg.DiscordToken,
		GuildID:         cfg.DiscordGuildID,
		ReportChannelID: cfg.ReportChannelID,
		ReportHour:      cfg.ReportHour,
	}
	discordBot, err := bot.New(botConfig, snapshots, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Start the scheduled report worker when a channel is configured
	var stopWorker func()
	if cfg.ReportChannelID != "" {
		stopWorker = discordBot.StartReportWorker(ctx)
	} else {
		log.Println("REPORT_CHANNEL_ID not set, scheduled report disabled")
	}

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")
	if stopWorker != nil {
		stopWorker()
	}

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}

// newRowSource builds the configured row source. The returned cleanup
// closes the database pool for the postgres source.
func newRowSource(ctx context.Context, cfg *config.Config) (ingest.RowSource, func(), error) {
	switch cfg.RowSource {
	case config.SourceSheets:
		return ingest.NewSheetsSource(cfg.SpreadsheetID, cfg.SheetName, cfg.SheetRange, cfg.ServiceAccountFile), nil, nil
	case config.SourceCSV:
		return ingest.NewCSVSource(cfg.CSVPath), nil, nil
	case config.SourcePostgres:
		db, err := database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return repository.NewSubmissionRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown row source %q", cfg.RowSource)
	}
}
