package daily

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"stepbot/bot/common"
	"stepbot/models"
	"stepbot/service"
)

const dayArgLayout = "02.01"

func (f *Feature) handleToday(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	snapshot, err := f.snapshots.GetSnapshot(ctx, false)
	if err != nil {
		log.Errorf("Error getting snapshot for today: %v", err)
		common.RespondWithError(s, i, "Unable to load step data. Please try again.")
		return
	}

	today := models.DateOf(f.now().UTC())
	text := service.FormatDailyTable(today, snapshot.DailyTotals[today])
	if err := common.RespondWithText(s, i, text); err != nil {
		log.Errorf("Error responding to today command: %v", err)
	}
}

func (f *Feature) handleDayByDay(s *discordgo.Session, i *discordgo.InteractionCreate, argument string) {
	argument = strings.TrimSpace(argument)
	if argument == "" {
		common.RespondWithError(s, i, "Usage: /daybyday day:DD.MM")
		return
	}

	parsed, err := time.ParseInLocation(dayArgLayout, argument, time.UTC)
	if err != nil {
		common.RespondWithError(s, i, "Cannot parse date. Use DD.MM format.")
		return
	}

	today := f.now().UTC()
	target := time.Date(today.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)

	ctx := context.Background()
	snapshot, err := f.snapshots.GetSnapshot(ctx, false)
	if err != nil {
		log.Errorf("Error getting snapshot for daybyday: %v", err)
		common.RespondWithError(s, i, "Unable to load step data. Please try again.")
		return
	}

	matched, ok := service.NearestDay(target, snapshot.DailyTotals)
	if !ok {
		if err := common.RespondWithText(s, i, "No matching day found in the data set."); err != nil {
			log.Errorf("Error responding to daybyday command: %v", err)
		}
		return
	}

	text := service.FormatDailyTable(matched, snapshot.DailyTotals[matched])
	if err := common.RespondWithText(s, i, text); err != nil {
		log.Errorf("Error responding to daybyday command: %v", err)
	}
}
