package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/youkoulayley/vote-reminder-bot/cmd/run"
)

func main() {
	// A missing .env file is fine, the environment and flags are enough.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "Vote Reminder Bot",
		Usage: "Reminds EPIC RPG players when they can vote again",
		Commands: []*cli.Command{
			run.Command(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Error during execution")

		return
	}
}
