package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup setups the logger.
// The discordgo logs are sent to the same logger.
func Setup(level, format string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	zerolog.SetGlobalLevel(l)

	var w io.Writer

	switch format {
	case "json":
		w = os.Stderr
	case "console":
		w = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	default:
		w = os.Stderr
	}

	log.Logger = zerolog.New(w).With().Caller().Timestamp().Logger()

	discordgo.Logger = discordLogger

	return nil
}

// DiscordLevel returns the discordgo log level matching the global log level.
func DiscordLevel() int {
	switch l := zerolog.GlobalLevel(); {
	case l <= zerolog.DebugLevel:
		return discordgo.LogDebug
	case l == zerolog.InfoLevel:
		return discordgo.LogInformational
	case l == zerolog.WarnLevel:
		return discordgo.LogWarning
	default:
		return discordgo.LogError
	}
}

func discordLogger(msgL, _ int, format string, a ...interface{}) {
	var event *zerolog.Event

	switch msgL {
	case discordgo.LogError:
		event = log.Error()
	case discordgo.LogWarning:
		event = log.Warn()
	case discordgo.LogInformational:
		event = log.Info()
	default:
		event = log.Debug()
	}

	event.Str("component", "discordgo").Msgf(format, a...)
}
