package cmd

import (
	"fmt"
	"strings"

	"finshorts/config"

	"github.com/cqroot/prompt"
	"github.com/urfave/cli/v2"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter configuration file",
		Description: `Interactively creates a config.toml with the environment, feed list
and database location filled in.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "Where to write the configuration file",
				EnvVars: []string{"FINSHORTS_CONFIG"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg := config.Default()

			environment, err := prompt.New().Ask("Environment:").Choose([]string{
				"production",
				"android-emulator",
				"ios-simulator",
			})
			if err != nil {
				return err
			}
			cfg.Environment = environment

			database, err := prompt.New().Ask("Database file:").Input(cfg.Server.Database)
			if err != nil {
				return err
			}
			cfg.Server.Database = database

			feeds, err := prompt.New().Ask("RSS feeds (comma separated, empty for none):").Input("")
			if err != nil {
				return err
			}
			for _, feed := range strings.Split(feeds, ",") {
				if feed = strings.TrimSpace(feed); feed != "" {
					cfg.Feeds = append(cfg.Feeds, feed)
				}
			}

			token, err := prompt.New().Ask("Upstream provider token (empty to disable):").Input("")
			if err != nil {
				return err
			}
			cfg.Provider.Token = token

			path := ctx.String("config")
			if err := cfg.Save(path); err != nil {
				return err
			}

			fmt.Println("Wrote", path)
			return nil
		},
	}
}
