package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
)

// CommandConfig holds the context of a command.
type CommandConfig struct {
	AuthorID  string
	ChannelID string
}

// ToggleConfig holds the parameters of the on/off commands.
type ToggleConfig struct {
	CommandConfig

	Enabled bool
}

// MessageConfig holds the parameters of the `!vote message` command.
type MessageConfig struct {
	CommandConfig

	Message string
}

// Enable handles the on command for the bot.
// Call it with `!on`. Users are registered on their first call.
func (b *Bot) Enable(ctx context.Context, cfg CommandConfig) {
	logger := log.With().Str("user_id", cfg.AuthorID).Logger()

	maybeUser, err := b.store.GetUser(ctx, cfg.AuthorID)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to get user")

		return
	}

	user, ok := maybeUser.Get()
	if !ok {
		if err = b.store.CreateUser(ctx, store.NewUser(cfg.AuthorID)); err != nil && !errors.As(err, &store.AlreadyExistsError{}) {
			logger.Error().Err(err).Msg("Unable to create user")

			return
		}

		b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> Welcome! I will remind you when you can vote again. `!help` to see what you can change.", cfg.AuthorID))

		return
	}

	if user.BotEnabled {
		b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> I'm already turned on.", cfg.AuthorID))

		return
	}

	user.BotEnabled = true
	if !b.update(ctx, cfg, user) {
		return
	}

	b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> Welcome back! Reminders are turned on.", cfg.AuthorID))
}

// Disable handles the off command for the bot.
// Call it with `!off`.
func (b *Bot) Disable(ctx context.Context, cfg CommandConfig) {
	user, ok := b.registeredUser(ctx, cfg)
	if !ok {
		return
	}

	user.BotEnabled = false
	if !b.update(ctx, cfg, user) {
		return
	}

	b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> Reminders are turned off. `!on` to turn them on again.", cfg.AuthorID))
}

// SetVoteAlert handles the vote on/off command for the bot.
// Call it with `!vote on` or `!vote off`.
func (b *Bot) SetVoteAlert(ctx context.Context, cfg ToggleConfig) {
	user, ok := b.registeredUser(ctx, cfg.CommandConfig)
	if !ok {
		return
	}

	user.AlertVote.Enabled = cfg.Enabled
	if !b.update(ctx, cfg.CommandConfig, user) {
		return
	}

	b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> Vote reminder %s.", cfg.AuthorID, status(cfg.Enabled)))
}

// SetVoteMessage handles the vote message command for the bot.
// Call it with `!vote message <Message>`. The message must contain `{command}`.
func (b *Bot) SetVoteMessage(ctx context.Context, cfg MessageConfig) {
	if !strings.Contains(cfg.Message, "{command}") {
		b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> The message must contain `{command}`.", cfg.AuthorID))

		return
	}

	user, ok := b.registeredUser(ctx, cfg.CommandConfig)
	if !ok {
		return
	}

	user.AlertVote.Message = cfg.Message
	if !b.update(ctx, cfg.CommandConfig, user) {
		return
	}

	b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> Vote reminder message updated.", cfg.AuthorID))
}

// SetReactions handles the reactions on/off command for the bot.
// Call it with `!reactions on` or `!reactions off`.
func (b *Bot) SetReactions(ctx context.Context, cfg ToggleConfig) {
	user, ok := b.registeredUser(ctx, cfg.CommandConfig)
	if !ok {
		return
	}

	user.ReactionsEnabled = cfg.Enabled
	if !b.update(ctx, cfg.CommandConfig, user) {
		return
	}

	b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> Reactions %s.", cfg.AuthorID, status(cfg.Enabled)))
}

// SetSlashMentions handles the slash on/off command for the bot.
// Call it with `!slash on` or `!slash off`.
func (b *Bot) SetSlashMentions(ctx context.Context, cfg ToggleConfig) {
	user, ok := b.registeredUser(ctx, cfg.CommandConfig)
	if !ok {
		return
	}

	user.SlashMentionsEnabled = cfg.Enabled
	if !b.update(ctx, cfg.CommandConfig, user) {
		return
	}

	b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> Slash commands in reminders %s.", cfg.AuthorID, status(cfg.Enabled)))
}

// Settings handles the settings command for the bot.
// Call it with `!settings`.
func (b *Bot) Settings(ctx context.Context, cfg CommandConfig) {
	user, ok := b.registeredUser(ctx, cfg)
	if !ok {
		return
	}

	maybeReminder, err := b.store.GetUserReminder(ctx, cfg.AuthorID, store.ActivityVote)
	if err != nil {
		log.Error().Err(err).Str("user_id", cfg.AuthorID).Msg("Unable to get vote reminder")

		return
	}

	next := "none"
	if reminder, found := maybeReminder.Get(); found {
		next = fmt.Sprintf("<t:%d:R>", reminder.EndTime.Unix())
	}

	message := fmt.Sprintf(
		"<@%s> Settings:\n  - Reminders: %s\n  - Reactions: %s\n  - Slash commands: %s\n  - Vote reminder: %s\n  - Vote message: %s\n  - Next vote reminder: %s",
		cfg.AuthorID,
		status(user.BotEnabled),
		status(user.ReactionsEnabled),
		status(user.SlashMentionsEnabled),
		status(user.AlertVote.Enabled),
		user.AlertVote.Message,
		next,
	)

	b.send(ctx, cfg.ChannelID, message)
}

// Help handles all other commands.
func (b *Bot) Help(ctx context.Context, channelID string) {
	message := "Available commands:\n" +
		"  - `!on` / `!off`\n" +
		"  - `!vote on|off`\n" +
		"  - `!vote message <Message>` (`{command}` is replaced by the vote command, `{name}` by your mention)\n" +
		"  - `!reactions on|off`\n" +
		"  - `!slash on|off`\n" +
		"  - `!settings`"

	b.send(ctx, channelID, message)
}

// registeredUser returns the settings of the author. Unregistered authors are told to run `!on`.
func (b *Bot) registeredUser(ctx context.Context, cfg CommandConfig) (store.User, bool) {
	maybeUser, err := b.store.GetUser(ctx, cfg.AuthorID)
	if err != nil {
		log.Error().Err(err).Str("user_id", cfg.AuthorID).Msg("Unable to get user")

		return store.User{}, false
	}

	user, ok := maybeUser.Get()
	if !ok {
		b.send(ctx, cfg.ChannelID, fmt.Sprintf("<@%s> You are not registered yet, use `!on` first.", cfg.AuthorID))

		return store.User{}, false
	}

	return user, true
}

func (b *Bot) update(ctx context.Context, cfg CommandConfig, user store.User) bool {
	if err := b.store.UpdateUser(ctx, user); err != nil {
		log.Error().Err(err).Str("user_id", cfg.AuthorID).Msg("Unable to update user")

		return false
	}

	return true
}

func (b *Bot) send(ctx context.Context, channelID, message string) {
	if _, err := b.discord.SendMessage(ctx, channelID, message); err != nil {
		log.Error().Err(err).Msg("Unable to send message")
	}
}

func status(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}
