package cmd

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func Execute() {
	// Best-effort; a missing .env file is fine
	_ = godotenv.Load()

	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func RootApp() *cli.App {
	return &cli.App{
		Name:  "finshorts",
		Usage: "Short-form market news, served and read from the terminal",
		Description: `Finshorts pulls market news from upstream sources, distills each
		article into a short summary with a cleaned-up headline, and serves
		the result as a JSON feed.

		The same binary carries the reader: a vertically paged terminal
		client with pull-to-refresh semantics and load-more pagination.

		Flags can generally be set via environment variables, e.g.:

		--database => FINSHORTS_DATABASE=finshorts.db
		--port => FINSHORTS_PORT=5000
		`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"FINSHORTS_LOG_LEVEL"},
			},
		},
		Before: func(ctx *cli.Context) error {
			level, err := log.ParseLevel(ctx.String("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			readCmd(),
			fetchCmd(),
			updateCmd(),
			scrapeCmd(),
			migrateCmd(),
			initCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}
