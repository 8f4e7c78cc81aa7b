package handlers

import (
	"testing"

	"github.com/youkoulayley/vote-reminder-bot/pkg/bot"
)

const (
	testAuthorID  = "3"
	testChannelID = "channel"
)

var testCommand = bot.CommandConfig{AuthorID: testAuthorID, ChannelID: testChannelID}

func setupHandler(t *testing.T, b *botMock, w *watcherMock) Handler {
	t.Helper()

	t.Cleanup(func() {
		b.AssertExpectations(t)
		w.AssertExpectations(t)
	})

	return New(b, w, syncPool{})
}
