package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
	"github.com/youkoulayley/vote-reminder-bot/pkg/bot"
)

type botMock struct {
	mock.Mock
}

func (b *botMock) Enable(_ context.Context, cfg bot.CommandConfig) {
	b.Called(cfg)
}

func (b *botMock) Disable(_ context.Context, cfg bot.CommandConfig) {
	b.Called(cfg)
}

func (b *botMock) SetVoteAlert(_ context.Context, cfg bot.ToggleConfig) {
	b.Called(cfg)
}

func (b *botMock) SetVoteMessage(_ context.Context, cfg bot.MessageConfig) {
	b.Called(cfg)
}

func (b *botMock) SetReactions(_ context.Context, cfg bot.ToggleConfig) {
	b.Called(cfg)
}

func (b *botMock) SetSlashMentions(_ context.Context, cfg bot.ToggleConfig) {
	b.Called(cfg)
}

func (b *botMock) Settings(_ context.Context, cfg bot.CommandConfig) {
	b.Called(cfg)
}

func (b *botMock) Help(_ context.Context, channelID string) {
	b.Called(channelID)
}

type watcherMock struct {
	mock.Mock
}

func (w *watcherMock) HandleCreate(_ context.Context, m *discordgo.Message) error {
	return w.Called(m).Error(0)
}

func (w *watcherMock) HandleEdit(_ context.Context, before, after *discordgo.Message) error {
	return w.Called(before, after).Error(0)
}

// syncPool runs the tasks right away.
type syncPool struct{}

func (syncPool) Submit(task func()) { task() }
