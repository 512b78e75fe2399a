package cmd

import (
	"io"

	"finshorts/client"
	"finshorts/config"
	"finshorts/feed"
	"finshorts/tui"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func readCmd() *cli.Command {
	return &cli.Command{
		Name:  "read",
		Usage: "Read the feed in the terminal",
		Description: `Opens the vertically paged reader against the configured news API.

One article per page; moving near the end of the feed loads more, 'r'
forces a refresh and 'u' asks the server to regenerate its feed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "environment",
				Aliases: []string{"e"},
				Value:   "production",
				Usage:   "Environment key used to pick the API base URL",
				EnvVars: []string{"FINSHORTS_ENVIRONMENT"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Explicit API base URL, overrides the environment table",
				EnvVars: []string{"FINSHORTS_BASE_URL"},
			},
		},
		Action: func(ctx *cli.Context) error {
			// The reader owns the terminal; keep log output away from it
			log.SetOutput(io.Discard)

			baseURL := config.ResolveBaseURL(ctx.String("environment"), ctx.String("base-url"))
			state := feed.New(client.New(baseURL))

			program := tea.NewProgram(tui.NewModel(state), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}
