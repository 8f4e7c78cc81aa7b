package run

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/youkoulayley/vote-reminder-bot/pkg/bot"
	"github.com/youkoulayley/vote-reminder-bot/pkg/discord"
	"github.com/youkoulayley/vote-reminder-bot/pkg/handlers"
	"github.com/youkoulayley/vote-reminder-bot/pkg/logger"
	"github.com/youkoulayley/vote-reminder-bot/pkg/reminder"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
	"github.com/youkoulayley/vote-reminder-bot/pkg/vote"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const databaseName = "vote-reminder-bot"

func run(ctx *cli.Context) error {
	if err := logger.Setup(ctx.String(flagLogLevel), ctx.String(flagLogFormat)); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	session, err := discordgo.New("Bot " + ctx.String(flagBotToken))
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}

	session.LogLevel = logger.DiscordLevel()
	session.State.MaxMessageCount = ctx.Int(flagMessageCacheSize)
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	opts := options.Client().
		ApplyURI(ctx.String(flagMongoURI)).
		SetSocketTimeout(2 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.NewClient(opts)
	if err != nil {
		return fmt.Errorf("create MongoDB client: %w", err)
	}

	if err = client.Connect(ctx.Context); err != nil {
		return fmt.Errorf("connect db: %w", err)
	}

	defer func() { _ = client.Disconnect(ctx.Context) }()

	s := store.New(client, databaseName)

	if err = s.Bootstrap(ctx.Context); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx.Context)
	defer cancel()

	d := discord.New(session, ctx.Int(flagHistoryLimit))

	r := reminder.New(&s, d)
	go r.Run(runCtx, ctx.Duration(flagSchedulerInterval))

	settings := vote.DefaultSettings()
	settings.AuthorIDs = ctx.StringSlice(flagRPGBotIDs)
	settings.VoteSlashCommand = ctx.String(flagVoteSlashCommand)

	w := vote.New(settings, &s, d, r)

	pool := workerpool.New(ctx.Int(flagWorkers))
	defer pool.StopWait()

	h := handlers.New(bot.New(d, &s), w, pool)

	session.AddHandler(h.MessageCreate)
	session.AddHandler(h.MessageUpdate)

	if err = session.Open(); err != nil {
		return fmt.Errorf("discord session open: %w", err)
	}

	defer func() { _ = session.Close() }()

	log.Info().Strs("rpg_bot_ids", settings.AuthorIDs).Msg("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case <-sc:
	case <-runCtx.Done():
	}

	return nil
}
