package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"finshorts/client"
	"finshorts/config"
	"finshorts/feed"
	"finshorts/models"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Print the current feed to the command line",
		Description: `Fetches the feed once and prints each normalized article as a JSON
object on a single line. Use a tool like jq to process the output.

Prints all other log messages to stderr.`,
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
			&cli.BoolFlag{
				Name:  "refresh",
				Usage: "Ask the server to bypass its cache",
			},
		},
		Action: func(ctx *cli.Context) error {
			// Keep the stdout stream clean for the JSON lines
			log.SetOutput(os.Stderr)

			baseURL := config.ResolveBaseURL(ctx.String("environment"), ctx.String("base-url"))
			api := client.New(baseURL)

			raws, err := api.FetchArticles(ctx.Context, ctx.Bool("refresh"))
			if err != nil {
				return err
			}

			for _, raw := range raws {
				printStdout(feed.ToArticle(raw))
			}
			return nil
		},
	}
}

func printStdout(article models.Article) {
	// Print as single JSON string on a single line
	raw, err := json.Marshal(article)
	if err == nil {
		fmt.Println(string(raw))
	}
}
