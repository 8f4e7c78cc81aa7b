package vote

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/mo"
	"github.com/youkoulayley/vote-reminder-bot/pkg/emojis"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storer is capable of interacting with the store.
type Storer interface {
	GetUser(ctx context.Context, id string) (mo.Option[store.User], error)
	GetUserReminder(ctx context.Context, userID, activity string) (mo.Option[store.Reminder], error)
	UpsertUserReminder(ctx context.Context, userID, activity string, timeLeft time.Duration, channelID, message string) (store.Reminder, error)
	DeleteReminder(ctx context.Context, id primitive.ObjectID) error
}

// Discord is capable of interacting with Discord.
type Discord interface {
	FindRecentMessage(ctx context.Context, channelID, beforeID string, pattern *regexp.Regexp) (mo.Option[*discordgo.Message], error)
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error
}

// Reminder is capable of interacting with the reminder.
type Reminder interface {
	SetUpdate()
}

// Watcher watches the game bot messages for vote rewards embeds and keeps the vote reminder
// of the user in sync with the cooldown they show.
type Watcher struct {
	settings Settings
	store    Storer
	discord  Discord
	reminder Reminder

	now func() time.Time
}

// New creates a new Watcher.
func New(settings Settings, s Storer, d Discord, r Reminder) *Watcher {
	return &Watcher{
		settings: settings,
		store:    s,
		discord:  d,
		reminder: r,
		now:      time.Now,
	}
}

// HandleEdit handles an edited message. before is nil when the previous version of the message is unknown.
// Pin toggles, edits that change nothing and messages with disabled buttons are ignored.
func (w *Watcher) HandleEdit(ctx context.Context, before, after *discordgo.Message) error {
	if after == nil || !w.settings.isGameBot(after.Author) {
		return nil
	}

	if before != nil {
		if before.Pinned != after.Pinned {
			return nil
		}

		if before.Content == after.Content &&
			reflect.DeepEqual(before.Embeds, after.Embeds) &&
			reflect.DeepEqual(before.Components, after.Components) {
			return nil
		}
	}

	if hasDisabledComponent(after.Components) {
		return nil
	}

	return w.HandleCreate(ctx, after)
}

// HandleCreate handles a new message.
func (w *Watcher) HandleCreate(ctx context.Context, m *discordgo.Message) error {
	if m == nil || !w.settings.isGameBot(m.Author) {
		return nil
	}

	if len(m.Embeds) == 0 || m.Embeds[0] == nil || len(m.Embeds[0].Fields) == 0 {
		return nil
	}

	field := m.Embeds[0].Fields[0]
	if field == nil || !containsAny(strings.ToLower(field.Name), w.settings.VoteRewardPhrases) {
		return nil
	}

	logger := log.With().Str("channel_id", m.ChannelID).Str("message_id", m.ID).Logger()

	userID, err := w.resolveUser(ctx, m)
	if err != nil {
		return err
	}

	if userID == "" {
		if err = w.discord.AddReaction(ctx, m.ChannelID, m.ID, emojis.Warning); err != nil {
			return err
		}

		logger.Error().Msg("Couldn't find a user for the vote embed")

		return nil
	}

	logger = logger.With().Str("user_id", userID).Logger()

	maybeUser, err := w.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user %q: %w", userID, err)
	}

	user, ok := maybeUser.Get()
	if !ok {
		logger.Debug().Msg("First time user, skipping")

		return nil
	}

	if !user.BotEnabled || !user.AlertVote.Enabled {
		return nil
	}

	match := w.settings.CooldownPattern.FindStringSubmatch(strings.ToLower(field.Value))
	if match == nil {
		return w.cancelReminder(ctx, logger, m, user)
	}

	return w.scheduleReminder(ctx, logger, m, user, match[1])
}

// cancelReminder removes the vote reminder of the user, the reward can be claimed right away.
func (w *Watcher) cancelReminder(ctx context.Context, logger zerolog.Logger, m *discordgo.Message, user store.User) error {
	maybeReminder, err := w.store.GetUserReminder(ctx, user.ID, store.ActivityVote)
	if err != nil {
		return fmt.Errorf("get vote reminder: %w", err)
	}

	reminder, ok := maybeReminder.Get()
	if !ok {
		return nil
	}

	if err = w.store.DeleteReminder(ctx, reminder.ID); err != nil && !errors.As(err, &store.NotFoundError{}) {
		return fmt.Errorf("delete vote reminder: %w", err)
	}

	w.reminder.SetUpdate()

	maybeReminder, err = w.store.GetUserReminder(ctx, user.ID, store.ActivityVote)
	if err != nil {
		return fmt.Errorf("get vote reminder: %w", err)
	}

	if maybeReminder.IsPresent() {
		logger.Error().Str("reminder_id", reminder.ID.Hex()).Msg("Had an error deleting the vote reminder")

		return nil
	}

	if !user.ReactionsEnabled {
		return nil
	}

	return w.discord.AddReaction(ctx, m.ChannelID, m.ID, emojis.Cancelled)
}

// scheduleReminder creates or replaces the vote reminder of the user to fire when the cooldown ends.
func (w *Watcher) scheduleReminder(ctx context.Context, logger zerolog.Logger, m *discordgo.Message, user store.User, timestring string) error {
	timeLeft, err := TimeLeft(m, timestring, w.now())
	if err != nil {
		return fmt.Errorf("vote cooldown: %w", err)
	}

	if timeLeft < 0 {
		logger.Debug().Dur("time_left", timeLeft).Msg("Vote cooldown already over, skipping")

		return nil
	}

	message := strings.ReplaceAll(user.AlertVote.Message, "{command}", w.settings.command(user))

	reminder, err := w.store.UpsertUserReminder(ctx, user.ID, store.ActivityVote, timeLeft, m.ChannelID, message)
	if err != nil {
		if rErr := w.discord.AddReaction(ctx, m.ChannelID, m.ID, emojis.Warning); rErr != nil {
			logger.Error().Err(rErr).Msg("Unable to add warning reaction")
		}

		return fmt.Errorf("upsert vote reminder: %w", err)
	}

	w.reminder.SetUpdate()

	logger.Debug().
		Str("reminder_id", reminder.ID.Hex()).
		Time("end_time", reminder.EndTime).
		Msg("Vote reminder scheduled")

	if !user.ReactionsEnabled {
		return nil
	}

	return w.discord.AddReaction(ctx, m.ChannelID, m.ID, emojis.Reminder)
}

// resolveUser returns the ID of the user who asked for the vote embed, or an empty string.
func (w *Watcher) resolveUser(ctx context.Context, m *discordgo.Message) (string, error) {
	if m.InteractionMetadata != nil && m.InteractionMetadata.User != nil {
		return m.InteractionMetadata.User.ID, nil
	}

	if m.Interaction != nil && m.Interaction.User != nil {
		return m.Interaction.User.ID, nil
	}

	maybeMessage, err := w.discord.FindRecentMessage(ctx, m.ChannelID, m.ID, w.settings.VoteCommandPattern)
	if err != nil {
		return "", fmt.Errorf("find vote command: %w", err)
	}

	command, ok := maybeMessage.Get()
	if !ok || command.Author == nil {
		return "", nil
	}

	return command.Author.ID, nil
}

func hasDisabledComponent(components []discordgo.MessageComponent) bool {
	for _, c := range components {
		var children []discordgo.MessageComponent

		switch row := c.(type) {
		case *discordgo.ActionsRow:
			children = row.Components
		case discordgo.ActionsRow:
			children = row.Components
		default:
			continue
		}

		for _, child := range children {
			switch component := child.(type) {
			case *discordgo.Button:
				if component.Disabled {
					return true
				}
			case discordgo.Button:
				if component.Disabled {
					return true
				}
			case *discordgo.SelectMenu:
				if component.Disabled {
					return true
				}
			case discordgo.SelectMenu:
				if component.Disabled {
					return true
				}
			}
		}
	}

	return false
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
