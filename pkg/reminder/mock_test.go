package reminder

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type storerMock struct {
	mock.Mock
}

func (s *storerMock) ListReminders(_ context.Context) ([]store.Reminder, error) {
	ret := s.Called()

	return ret.Get(0).([]store.Reminder), ret.Error(1)
}

func (s *storerMock) DeleteReminder(_ context.Context, id primitive.ObjectID) error {
	return s.Called(id).Error(0)
}

type discordMock struct {
	mock.Mock
}

func (d *discordMock) SendMessage(_ context.Context, channelID, text string) (*discordgo.Message, error) {
	ret := d.Called(channelID, text)

	return ret.Get(0).(*discordgo.Message), ret.Error(1)
}
