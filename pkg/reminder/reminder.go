package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/atomic"
)

// Storer is capable of interacting with the store.
type Storer interface {
	ListReminders(ctx context.Context) ([]store.Reminder, error)
	DeleteReminder(ctx context.Context, id primitive.ObjectID) error
}

// Discord is capable of interacting with Discord.
type Discord interface {
	SendMessage(ctx context.Context, channelID, text string) (*discordgo.Message, error)
}

// Reminder sends the reminders when they are due.
type Reminder struct {
	reminders   []store.Reminder
	remindersMu sync.Mutex

	needUpdate *atomic.Bool

	discord Discord
	store   Storer

	now func() time.Time
}

// New creates a new Reminder.
// Reminders are loaded on the first Process call.
func New(s Storer, d Discord) *Reminder {
	return &Reminder{
		store:      s,
		discord:    d,
		needUpdate: atomic.NewBool(true),
		now:        time.Now,
	}
}

// SetUpdate notify the reminder to load the reminders again.
func (r *Reminder) SetUpdate() {
	r.needUpdate.Store(true)
}

// LoadReminders loads the reminders stored in the storer to the memory.
func (r *Reminder) LoadReminders(ctx context.Context) error {
	reminders, err := r.store.ListReminders(ctx)
	if err != nil {
		return fmt.Errorf("list reminders: %w", err)
	}

	r.remindersMu.Lock()
	r.reminders = reminders
	r.remindersMu.Unlock()

	return nil
}

// Run starts the ticker.
func (r *Reminder) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-t.C:
			r.Process(ctx)
		}
	}
}

// Process sends every due reminder and removes it from the store.
// A reminder that could not be sent is tried again on the next call.
func (r *Reminder) Process(ctx context.Context) {
	if r.needUpdate.CAS(true, false) {
		if err := r.LoadReminders(ctx); err != nil {
			r.needUpdate.Store(true)
			log.Error().Err(err).Msg("Unable to load reminders")

			return
		}
	}

	r.remindersMu.Lock()
	reminders := make([]store.Reminder, len(r.reminders))
	copy(reminders, r.reminders)
	r.remindersMu.Unlock()

	now := r.now()

	var sent bool
	for _, reminder := range reminders {
		if reminder.EndTime.After(now) {
			continue
		}

		logger := log.With().
			Str("reminder_id", reminder.ID.Hex()).
			Str("user_id", reminder.UserID).
			Str("activity", reminder.Activity).
			Logger()

		if _, err := r.discord.SendMessage(ctx, reminder.ChannelID, Text(reminder)); err != nil {
			logger.Error().Err(err).Msg("Unable to send reminder message")

			continue
		}

		sent = true

		if err := r.store.DeleteReminder(ctx, reminder.ID); err != nil && !errors.As(err, &store.NotFoundError{}) {
			logger.Error().Err(err).Msg("Unable to delete reminder")

			continue
		}
	}

	if sent {
		if err := r.LoadReminders(ctx); err != nil {
			r.needUpdate.Store(true)
			log.Error().Err(err).Msg("Unable to load reminders")
		}
	}
}

// Text returns the message sent when the given reminder is due.
func Text(reminder store.Reminder) string {
	return strings.ReplaceAll(reminder.Message, "{name}", fmt.Sprintf("<@%s>", reminder.UserID))
}
