package report

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"stepbot/service"
)

// Feature serves the combined report and the manual cache refresh.
type Feature struct {
	snapshots service.SnapshotProvider
	now       func() time.Time
}

// New creates a new report feature instance
func New(snapshots service.SnapshotProvider) *Feature {
	return &Feature{
		snapshots: snapshots,
		now:       time.Now,
	}
}

// HandleReport handles the /report command
func (f *Feature) HandleReport(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleReport(s, i)
}

// HandleRefresh handles the /refresh command
func (f *Feature) HandleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleRefresh(s, i)
}
