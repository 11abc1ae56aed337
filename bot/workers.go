package bot

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"stepbot/service"
)

// StartReportWorker schedules the daily report push. At the configured
// UTC hour it forces a snapshot refresh and posts the combined report
// to the report channel. A refresh failure is reported to the channel
// as well; the previously cached snapshot stays untouched for other
// callers. The returned func stops the worker.
func (b *Bot) StartReportWorker(ctx context.Context) func() {
	stopChan := make(chan struct{})

	// Calculate time until the next scheduled post
	calculateNextRun := func() time.Duration {
		now := time.Now().UTC()
		next := time.Date(now.Year(), now.Month(), now.Day(), b.config.ReportHour, 0, 0, 0, time.UTC)

		// If the post time has already passed today, schedule for tomorrow
		if now.After(next) || now.Equal(next) {
			next = next.Add(24 * time.Hour)
		}

		return next.Sub(now)
	}

	go func() {
		log.Infof("Report worker started, next run at %02d:00 UTC", b.config.ReportHour)

		for {
			waitDuration := calculateNextRun()
			log.Infof("Report worker waiting %v until next run", waitDuration)

			select {
			case <-ctx.Done():
				log.Info("Report worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Report worker shutting down (stop requested)...")
				return
			case <-time.After(waitDuration):
				if err := b.postScheduledReport(ctx); err != nil {
					log.Errorf("Error posting scheduled report: %v", err)
				}
			}
		}
	}()

	return func() {
		close(stopChan)
	}
}

// postScheduledReport forces a refresh and posts the combined report.
func (b *Bot) postScheduledReport(ctx context.Context) error {
	snapshot, err := b.snapshots.GetSnapshot(ctx, true)
	if err != nil {
		// The failure must be visible to the channel, not just the log.
		message := fmt.Sprintf("Scheduled report failed: could not refresh step data (%v).", err)
		if _, sendErr := b.session.ChannelMessageSend(b.config.ReportChannelID, message); sendErr != nil {
			log.Errorf("Failed to post refresh failure notice: %v", sendErr)
		}
		return fmt.Errorf("forced refresh failed: %w", err)
	}

	text := service.BuildCombinedReport(snapshot, time.Now().UTC())
	if _, err := b.session.ChannelMessageSend(b.config.ReportChannelID, text); err != nil {
		return fmt.Errorf("failed to send scheduled report: %w", err)
	}

	log.WithFields(log.Fields{
		"channel_id": b.config.ReportChannelID,
		"entries":    len(snapshot.Entries),
		"teams":      len(snapshot.TeamTotals),
	}).Info("Scheduled report posted")

	return nil
}
