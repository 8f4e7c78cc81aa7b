package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// MessageUpdate gets all message edited.
// Only messages sent by bots are handled, the previous version comes from the state cache when present.
func (h Handler) MessageUpdate(_ *discordgo.Session, e *discordgo.MessageUpdate) {
	if e == nil || e.Message == nil || e.Author == nil || !e.Author.Bot {
		return
	}

	before, after := e.BeforeUpdate, e.Message

	h.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		defer cancel()

		if err := h.watcher.HandleEdit(ctx, before, after); err != nil {
			log.Error().Err(err).
				Str("channel_id", after.ChannelID).
				Str("message_id", after.ID).
				Msg("Unable to handle edited message")
		}
	})
}
