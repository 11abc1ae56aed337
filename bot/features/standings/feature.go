package standings

import (
	"github.com/bwmarrin/discordgo"

	"stepbot/service"
)

// Feature serves the team leaderboard command.
type Feature struct {
	snapshots service.SnapshotProvider
}

// New creates a new standings feature instance
func New(snapshots service.SnapshotProvider) *Feature {
	return &Feature{
		snapshots: snapshots,
	}
}

// HandleCommand handles the /leaderboard command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleLeaderboard(s, i)
}
