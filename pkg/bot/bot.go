package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
)

// Bot represents the Discord bot.
type Bot struct {
	discord Discord
	store   Storer
}

// New creates a bot.
func New(d Discord, s Storer) *Bot {
	return &Bot{
		discord: d,
		store:   s,
	}
}

// Storer is capable of interacting with the store.
type Storer interface {
	GetUser(ctx context.Context, id string) (mo.Option[store.User], error)
	CreateUser(ctx context.Context, user store.User) error
	UpdateUser(ctx context.Context, user store.User) error
	GetUserReminder(ctx context.Context, userID, activity string) (mo.Option[store.Reminder], error)
}

// Discord is capable of interacting with Discord.
type Discord interface {
	SendMessage(ctx context.Context, channelID, text string) (*discordgo.Message, error)
}
