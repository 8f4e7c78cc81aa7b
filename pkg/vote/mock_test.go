package vote

import (
	"context"
	"regexp"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type storeMock struct {
	mock.Mock
}

func (s *storeMock) GetUser(_ context.Context, id string) (mo.Option[store.User], error) {
	ret := s.Called(id)

	return ret.Get(0).(mo.Option[store.User]), ret.Error(1)
}

func (s *storeMock) GetUserReminder(_ context.Context, userID, activity string) (mo.Option[store.Reminder], error) {
	ret := s.Called(userID, activity)

	return ret.Get(0).(mo.Option[store.Reminder]), ret.Error(1)
}

func (s *storeMock) UpsertUserReminder(_ context.Context, userID, activity string, timeLeft time.Duration, channelID, message string) (store.Reminder, error) {
	ret := s.Called(userID, activity, timeLeft, channelID, message)

	return ret.Get(0).(store.Reminder), ret.Error(1)
}

func (s *storeMock) DeleteReminder(_ context.Context, id primitive.ObjectID) error {
	return s.Called(id).Error(0)
}

type discordMock struct {
	mock.Mock
}

func (d *discordMock) FindRecentMessage(_ context.Context, channelID, beforeID string, _ *regexp.Regexp) (mo.Option[*discordgo.Message], error) {
	ret := d.Called(channelID, beforeID)

	return ret.Get(0).(mo.Option[*discordgo.Message]), ret.Error(1)
}

func (d *discordMock) AddReaction(_ context.Context, channelID, messageID, emoji string) error {
	return d.Called(channelID, messageID, emoji).Error(0)
}

type reminderMock struct {
	mock.Mock
}

func (r *reminderMock) SetUpdate() {
	r.Called()
}
