package discord

import (
	"context"
	"fmt"
	"regexp"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
)

// maxHistoryLimit is the maximum number of messages Discord returns per history request.
const maxHistoryLimit = 100

// Discord wraps a Discord session.
type Discord struct {
	session      *discordgo.Session
	historyLimit int
}

// New creates a new Discord.
func New(s *discordgo.Session, historyLimit int) *Discord {
	if historyLimit <= 0 || historyLimit > maxHistoryLimit {
		historyLimit = maxHistoryLimit
	}

	return &Discord{
		session:      s,
		historyLimit: historyLimit,
	}
}

// FindRecentMessage searches the channel history before the given message, newest first,
// for a message written by a human that matches the pattern.
func (d *Discord) FindRecentMessage(ctx context.Context, channelID, beforeID string, pattern *regexp.Regexp) (mo.Option[*discordgo.Message], error) {
	messages, err := d.session.ChannelMessages(channelID, d.historyLimit, beforeID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return mo.None[*discordgo.Message](), fmt.Errorf("channel messages: %w", err)
	}

	return FindMessage(messages, pattern), nil
}

// FindMessage returns the first message of the list written by a human that matches the pattern.
func FindMessage(messages []*discordgo.Message, pattern *regexp.Regexp) mo.Option[*discordgo.Message] {
	for _, m := range messages {
		if m == nil || m.Author == nil || m.Author.Bot {
			continue
		}

		if pattern.MatchString(m.Content) {
			return mo.Some(m)
		}
	}

	return mo.None[*discordgo.Message]()
}

// AddReaction reacts to the given message.
func (d *Discord) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	if err := d.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("add reaction: %w", err)
	}

	return nil
}

// SendMessage sends a message in the given channel.
func (d *Discord) SendMessage(ctx context.Context, channelID, text string) (*discordgo.Message, error) {
	m, err := d.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	return m, nil
}
