package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)

func setupReminder(t *testing.T, s *storerMock, d *discordMock) *Reminder {
	t.Helper()

	r := New(s, d)
	r.now = func() time.Time { return testNow }

	t.Cleanup(func() {
		s.AssertExpectations(t)
		d.AssertExpectations(t)
	})

	return r
}

func dueReminder() store.Reminder {
	return store.Reminder{
		ID:        primitive.NewObjectID(),
		UserID:    "42",
		Activity:  store.ActivityVote,
		EndTime:   testNow.Add(-time.Second),
		ChannelID: "channel",
		Message:   "{name} Hey! It's time for `rpg vote`!",
	}
}

func TestReminder_SetUpdate(t *testing.T) {
	r := New(nil, nil)

	assert.Equal(t, true, r.needUpdate.Load())

	r.needUpdate.Store(false)
	assert.Equal(t, false, r.needUpdate.Load())

	r.SetUpdate()

	assert.Equal(t, true, r.needUpdate.Load())
}

func TestReminder_Process_loadRemindersError(t *testing.T) {
	s := &storerMock{}
	s.On("ListReminders").Return([]store.Reminder{}, errors.New("boom")).Once()

	r := setupReminder(t, s, &discordMock{})

	r.Process(context.Background())

	assert.True(t, r.needUpdate.Load())
}

func TestReminder_Process_sendReminder(t *testing.T) {
	reminder := dueReminder()

	s := &storerMock{}
	s.On("ListReminders").Return([]store.Reminder{reminder}, nil).Once()
	s.On("DeleteReminder", reminder.ID).Return(nil).Once()
	s.On("ListReminders").Return([]store.Reminder{}, nil).Once()

	d := &discordMock{}
	d.On("SendMessage", "channel", "<@42> Hey! It's time for `rpg vote`!").
		Return(&discordgo.Message{}, nil).
		Once()

	r := setupReminder(t, s, d)

	r.Process(context.Background())

	assert.Empty(t, r.reminders)
	assert.False(t, r.needUpdate.Load())
}

func TestReminder_Process_notDue(t *testing.T) {
	reminder := dueReminder()
	reminder.EndTime = testNow.Add(time.Minute)

	s := &storerMock{}
	s.On("ListReminders").Return([]store.Reminder{reminder}, nil).Once()

	r := setupReminder(t, s, &discordMock{})

	r.Process(context.Background())
	r.Process(context.Background())

	assert.Equal(t, []store.Reminder{reminder}, r.reminders)
}

func TestReminder_Process_sendMessageError(t *testing.T) {
	reminder := dueReminder()

	s := &storerMock{}
	s.On("ListReminders").Return([]store.Reminder{reminder}, nil).Once()

	d := &discordMock{}
	d.On("SendMessage", "channel", "<@42> Hey! It's time for `rpg vote`!").
		Return(&discordgo.Message{}, errors.New("boom")).
		Once()

	r := setupReminder(t, s, d)

	r.Process(context.Background())

	assert.Equal(t, []store.Reminder{reminder}, r.reminders)
}

func TestReminder_Process_deleteReminderError(t *testing.T) {
	reminder := dueReminder()

	s := &storerMock{}
	s.On("ListReminders").Return([]store.Reminder{reminder}, nil).Once()
	s.On("DeleteReminder", reminder.ID).Return(errors.New("boom")).Once()
	s.On("ListReminders").Return([]store.Reminder{}, nil).Once()

	d := &discordMock{}
	d.On("SendMessage", "channel", "<@42> Hey! It's time for `rpg vote`!").
		Return(&discordgo.Message{}, nil).
		Once()

	r := setupReminder(t, s, d)

	r.Process(context.Background())
}

func TestReminder_Process_reloadAfterSetUpdate(t *testing.T) {
	reminder := dueReminder()
	reminder.EndTime = testNow.Add(time.Hour)

	s := &storerMock{}
	s.On("ListReminders").Return([]store.Reminder{}, nil).Once()
	s.On("ListReminders").Return([]store.Reminder{reminder}, nil).Once()

	r := setupReminder(t, s, &discordMock{})

	r.Process(context.Background())
	require.Empty(t, r.reminders)

	r.SetUpdate()
	r.Process(context.Background())

	assert.Equal(t, []store.Reminder{reminder}, r.reminders)
}

func TestReminder_Run(t *testing.T) {
	s := &storerMock{}
	s.On("ListReminders").Return([]store.Reminder{}, nil).Once()

	r := setupReminder(t, s, &discordMock{})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	r.Run(ctx, 10*time.Millisecond)
}

func TestText(t *testing.T) {
	got := Text(store.Reminder{UserID: "42", Message: "{name} vote with {name}"})

	assert.Equal(t, "<@42> vote with <@42>", got)
}
