package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"stepbot/bot/common"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "help",
			Description: "Show what the bot can do",
		},
		{
			Name:        "leaderboard",
			Description: "Total steps per team",
		},
		{
			Name:        "today",
			Description: "Steps added today",
		},
		{
			Name:        "daybyday",
			Description: "Steps per team for a specific day",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "day",
					Description: "Day in DD.MM format",
					Required:    true,
				},
			},
		},
		{
			Name:        "report",
			Description: "Team totals plus the last day increase",
		},
		{
			Name:        "refresh",
			Description: "Force a refresh of the step data",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

// handleCommands routes slash commands to their feature handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "help":
		b.handleHelp(s, i)
	case "leaderboard":
		b.standingsFeature.HandleCommand(s, i)
	case "today":
		b.dailyFeature.HandleToday(s, i)
	case "daybyday":
		b.dailyFeature.HandleDayByDay(s, i)
	case "report":
		b.reportFeature.HandleReport(s, i)
	case "refresh":
		b.reportFeature.HandleRefresh(s, i)
	}
}

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	help := "Hi! I can show marathon step stats.\n" +
		"/leaderboard — total steps per team.\n" +
		"/today — steps added today.\n" +
		"/daybyday day:DD.MM — steps per team for a specific day.\n" +
		"/report — team totals plus the last day increase.\n" +
		"/refresh — force a refresh of the step data."

	if err := common.RespondWithText(s, i, help); err != nil {
		log.Errorf("Error responding to help command: %v", err)
	}
}
