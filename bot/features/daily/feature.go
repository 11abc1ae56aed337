package daily

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"stepbot/bot/common"
	"stepbot/service"
)

// Feature serves the per-day commands: /today and /daybyday.
type Feature struct {
	snapshots service.SnapshotProvider
	now       func() time.Time
}

// New creates a new daily feature instance
func New(snapshots service.SnapshotProvider) *Feature {
	return &Feature{
		snapshots: snapshots,
		now:       time.Now,
	}
}

// HandleToday handles the /today command
func (f *Feature) HandleToday(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleToday(s, i)
}

// HandleDayByDay handles the /daybyday command
func (f *Feature) HandleDayByDay(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Usage: /daybyday day:DD.MM")
		return
	}
	f.handleDayByDay(s, i, options[0].StringValue())
}
