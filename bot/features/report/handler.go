package report

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"stepbot/bot/common"
	"stepbot/service"
)

func (f *Feature) handleReport(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	snapshot, err := f.snapshots.GetSnapshot(ctx, false)
	if err != nil {
		log.Errorf("Error getting snapshot for report: %v", err)
		common.RespondWithError(s, i, "Unable to load step data. Please try again.")
		return
	}

	text := service.BuildCombinedReport(snapshot, f.now().UTC())
	if err := common.RespondWithText(s, i, text); err != nil {
		log.Errorf("Error responding to report command: %v", err)
	}
}

// handleRefresh forces a snapshot rebuild. The fetch can take a while,
// so the response is deferred first.
func (f *Feature) handleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := common.DeferResponse(s, i); err != nil {
		log.Errorf("Error deferring refresh response: %v", err)
		return
	}

	ctx := context.Background()
	snapshot, err := f.snapshots.GetSnapshot(ctx, true)
	if err != nil {
		log.Errorf("Error forcing snapshot refresh: %v", err)
		if err := common.FollowUpWithText(s, i, fmt.Sprintf("Refresh failed: %v", err)); err != nil {
			log.Errorf("Error sending refresh failure follow-up: %v", err)
		}
		return
	}

	message := fmt.Sprintf("Refreshed: %d entries across %d teams.",
		len(snapshot.Entries), len(snapshot.TeamTotals))
	if err := common.FollowUpWithText(s, i, message); err != nil {
		log.Errorf("Error responding to refresh command: %v", err)
	}
}
