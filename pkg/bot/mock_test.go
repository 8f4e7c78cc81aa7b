package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
)

type discordMock struct {
	mock.Mock
}

func (d *discordMock) SendMessage(_ context.Context, channelID, text string) (*discordgo.Message, error) {
	ret := d.Called(channelID, text)

	return ret.Get(0).(*discordgo.Message), ret.Error(1)
}

type storeMock struct {
	mock.Mock
}

func (s *storeMock) GetUser(_ context.Context, id string) (mo.Option[store.User], error) {
	ret := s.Called(id)

	return ret.Get(0).(mo.Option[store.User]), ret.Error(1)
}

func (s *storeMock) CreateUser(_ context.Context, user store.User) error {
	return s.Called(user).Error(0)
}

func (s *storeMock) UpdateUser(_ context.Context, user store.User) error {
	return s.Called(user).Error(0)
}

func (s *storeMock) GetUserReminder(_ context.Context, userID, activity string) (mo.Option[store.Reminder], error) {
	ret := s.Called(userID, activity)

	return ret.Get(0).(mo.Option[store.Reminder]), ret.Error(1)
}
