package cmd

import (
	"fmt"

	"finshorts/client"
	"finshorts/config"

	"github.com/urfave/cli/v2"
)

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Ask the server to regenerate its feed",
		Description: `Triggers a server-side feed regeneration via POST /news/update.

The server pulls fresh articles from its upstream sources and replaces
the stored feed. Fetch afterwards to see the result.`,
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
			baseURL := config.ResolveBaseURL(ctx.String("environment"), ctx.String("base-url"))
			api := client.New(baseURL)

			if err := api.ForceUpdate(ctx.Context); err != nil {
				return fmt.Errorf("update failed: %w", err)
			}

			fmt.Println("Server-side update triggered")
			return nil
		},
	}
}
