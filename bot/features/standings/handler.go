package standings

import (
	"context"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"stepbot/bot/common"
	"stepbot/service"
)

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	snapshot, err := f.snapshots.GetSnapshot(ctx, false)
	if err != nil {
		log.Errorf("Error getting snapshot for leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to load step data. Please try again.")
		return
	}

	text := service.FormatTotalsTable(snapshot.TeamTotals, service.TotalsTitle)
	if err := common.RespondWithText(s, i, text); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}
