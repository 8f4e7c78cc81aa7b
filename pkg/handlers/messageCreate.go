package handlers

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"github.com/youkoulayley/vote-reminder-bot/pkg/bot"
)

const commandPrefix = "!"

// MessageCreate gets all message created.
// Messages sent by bots go to the watcher, commands sent by users go to the bot.
func (h Handler) MessageCreate(_ *discordgo.Session, e *discordgo.MessageCreate) {
	if e == nil || e.Message == nil || e.Author == nil {
		return
	}

	m := e.Message

	if m.Author.Bot {
		h.pool.Submit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
			defer cancel()

			if err := h.watcher.HandleCreate(ctx, m); err != nil {
				log.Error().Err(err).
					Str("channel_id", m.ChannelID).
					Str("message_id", m.ID).
					Msg("Unable to handle message")
			}
		})

		return
	}

	if !strings.HasPrefix(strings.TrimSpace(m.Content), commandPrefix) {
		return
	}

	h.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		defer cancel()

		h.command(ctx, m)
	})
}

func (h Handler) command(ctx context.Context, m *discordgo.Message) {
	content := strings.TrimSpace(m.Content)

	parts := strings.Fields(content)
	if len(parts) == 0 {
		return
	}

	cfg := bot.CommandConfig{
		AuthorID:  m.Author.ID,
		ChannelID: m.ChannelID,
	}

	switch strings.ToLower(parts[0]) {
	case "!help":
		h.bot.Help(ctx, m.ChannelID)

	case "!on":
		h.bot.Enable(ctx, cfg)

	case "!off":
		h.bot.Disable(ctx, cfg)

	case "!settings":
		h.bot.Settings(ctx, cfg)

	case "!vote":
		if len(parts) > 1 && strings.EqualFold(parts[1], "message") {
			message := strings.TrimSpace(content[len(parts[0]):])
			message = strings.TrimSpace(message[len(parts[1]):])
			if message == "" {
				h.bot.Help(ctx, m.ChannelID)

				return
			}

			h.bot.SetVoteMessage(ctx, bot.MessageConfig{CommandConfig: cfg, Message: message})

			return
		}

		enabled, ok := parseToggle(parts)
		if !ok {
			h.bot.Help(ctx, m.ChannelID)

			return
		}

		h.bot.SetVoteAlert(ctx, bot.ToggleConfig{CommandConfig: cfg, Enabled: enabled})

	case "!reactions":
		enabled, ok := parseToggle(parts)
		if !ok {
			h.bot.Help(ctx, m.ChannelID)

			return
		}

		h.bot.SetReactions(ctx, bot.ToggleConfig{CommandConfig: cfg, Enabled: enabled})

	case "!slash":
		enabled, ok := parseToggle(parts)
		if !ok {
			h.bot.Help(ctx, m.ChannelID)

			return
		}

		h.bot.SetSlashMentions(ctx, bot.ToggleConfig{CommandConfig: cfg, Enabled: enabled})
	}
}

// parseToggle reads the on/off argument of `!<command> on|off`.
func parseToggle(parts []string) (enabled, ok bool) {
	if len(parts) != 2 {
		return false, false
	}

	switch strings.ToLower(parts[1]) {
	case "on":
		return true, true
	case "off":
		return false, true
	default:
		return false, false
	}
}
