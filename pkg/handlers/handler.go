package handlers

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/youkoulayley/vote-reminder-bot/pkg/bot"
)

const eventTimeout = 30 * time.Second

// Handler represents a Discord Handler.
type Handler struct {
	bot     Bot
	watcher Watcher
	pool    Pool
}

// New creates a new Handler.
func New(b Bot, w Watcher, p Pool) Handler {
	return Handler{
		bot:     b,
		watcher: w,
		pool:    p,
	}
}

// Bot is capable of interacting with the bot.
type Bot interface {
	Enable(ctx context.Context, cfg bot.CommandConfig)
	Disable(ctx context.Context, cfg bot.CommandConfig)
	SetVoteAlert(ctx context.Context, cfg bot.ToggleConfig)
	SetVoteMessage(ctx context.Context, cfg bot.MessageConfig)
	SetReactions(ctx context.Context, cfg bot.ToggleConfig)
	SetSlashMentions(ctx context.Context, cfg bot.ToggleConfig)
	Settings(ctx context.Context, cfg bot.CommandConfig)
	Help(ctx context.Context, channelID string)
}

// Watcher is capable of handling the game bot messages.
type Watcher interface {
	HandleCreate(ctx context.Context, m *discordgo.Message) error
	HandleEdit(ctx context.Context, before, after *discordgo.Message) error
}

// Pool runs the event tasks.
type Pool interface {
	Submit(task func())
}
