package bot

import (
	"testing"
)

const (
	testAuthorID  = "42"
	testChannelID = "channel"
)

var testCommand = CommandConfig{AuthorID: testAuthorID, ChannelID: testChannelID}

func setupBot(t *testing.T, d *discordMock, s *storeMock) *Bot {
	t.Helper()

	t.Cleanup(func() {
		d.AssertExpectations(t)
		s.AssertExpectations(t)
	})

	return New(d, s)
}
