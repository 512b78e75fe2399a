package cmd

import (
	"fmt"
	"time"

	"finshorts/cache"
	"finshorts/news"
	"finshorts/store"

	"github.com/urfave/cli/v2"
)

func scrapeCmd() *cli.Command {
	return &cli.Command{
		Name:  "scrape",
		Usage: "Run the ingestion pipeline once",
		Description: `Pulls articles from the configured upstream sources, summarizes them
and writes the result to the database, then exits.

Useful from cron when the long-running server is not wanted.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "Path to the configuration file",
				EnvVars: []string{"FINSHORTS_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "SQLite database file location",
				EnvVars: []string{"FINSHORTS_DATABASE"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg := loadConfigOrDefault(ctx.String("config"))
			if ctx.IsSet("database") {
				cfg.Server.Database = ctx.String("database")
			}

			if err := store.Migrate(cfg.Server.Database); err != nil {
				return fmt.Errorf("migrations failed: %w", err)
			}

			db, err := store.Open(cfg.Server.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			summaryCache := cache.New(cfg.Server.CacheAddr, parseDurationOr(cfg.Server.CacheTTL, 24*time.Hour))
			defer summaryCache.Close()

			var provider *news.Provider
			var usage *news.UsageTracker
			if cfg.Provider.Token != "" {
				provider = news.NewProvider(cfg.Provider.BaseURL, cfg.Provider.Token, cfg.Provider.Symbols, cfg.Provider.Limit)
				usage = news.NewUsageTracker(cfg.Provider.UsageFile, cfg.Provider.Budget)
			}

			service := news.NewService(news.ServiceConfig{
				Store:     db,
				Provider:  provider,
				Usage:     usage,
				Feeds:     cfg.Feeds,
				Languages: cfg.Languages,
				Cache:     summaryCache,
			})

			if err := service.Refresh(ctx.Context, true); err != nil {
				return err
			}

			fmt.Println("Scrape complete")
			return nil
		},
	}
}
