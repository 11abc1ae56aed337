package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"stepbot/bot/features/daily"
	"stepbot/bot/features/report"
	"stepbot/bot/features/standings"
	"stepbot/events"
	"stepbot/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token           string
	GuildID         string
	ReportChannelID string
	ReportHour      int
}

type Bot struct {
	config    Config
	session   *discordgo.Session
	snapshots service.SnapshotProvider
	eventBus  *events.Bus

	standingsFeature *standings.Feature
	dailyFeature     *daily.Feature
	reportFeature    *report.Feature
}

func New(config Config, snapshots service.SnapshotProvider, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:           config,
		session:          dg,
		snapshots:        snapshots,
		eventBus:         eventBus,
		standingsFeature: standings.New(snapshots),
		dailyFeature:     daily.New(snapshots),
		reportFeature:    report.New(snapshots),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Reflect each successful refresh in the bot presence
	eventBus.Subscribe(events.EventTypeSnapshotRefreshed, func(ctx context.Context, event events.Event) {
		refreshed, ok := event.(events.SnapshotRefreshedEvent)
		if !ok {
			return
		}
		status := fmt.Sprintf("steps of %d teams", refreshed.TeamCount)
		if err := bot.session.UpdateCustomStatus(status); err != nil {
			log.Errorf("Failed to update presence after refresh: %v", err)
		}
	})

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}
