package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"finshorts/cache"
	"finshorts/config"
	"finshorts/news"
	"finshorts/server"
	"finshorts/store"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the finshorts news API",
		Description: `Starts the news API server and the background ingestion loop.

Articles are pulled from the configured upstream provider and RSS feeds,
summarized, and stored in the SQLite database. The HTTP API serves the
stored feed and accepts forced updates from clients.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "Path to the configuration file",
				EnvVars: []string{"FINSHORTS_CONFIG"},
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on",
				EnvVars: []string{"FINSHORTS_PORT"},
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
			if ctx.IsSet("port") {
				cfg.Server.Port = ctx.Int("port")
			}
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

			app := server.New(&server.Config{
				Store:   db,
				Service: service,
			})

			// Background ingestion loop
			interval := parseDurationOr(cfg.Server.RefreshInterval, 6*time.Hour)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			loopCtx, cancel := context.WithCancel(ctx.Context)
			defer cancel()

			go func() {
				if err := service.Refresh(loopCtx, false); err != nil {
					log.WithFields(log.Fields{"error": err}).Warn("Initial refresh failed")
				}
				for {
					select {
					case <-loopCtx.Done():
						return
					case <-ticker.C:
						if err := service.Refresh(loopCtx, false); err != nil {
							log.WithFields(log.Fields{"error": err}).Warn("Scheduled refresh failed")
						}
					}
				}
			}()

			// Graceful shutdown
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt)
			go func() {
				<-c
				log.Info("Gracefully shutting down...")
				cancel()
				_ = app.ShutdownWithTimeout(30 * time.Second)
			}()

			log.WithFields(log.Fields{
				"port":     cfg.Server.Port,
				"database": cfg.Server.Database,
				"feeds":    len(cfg.Feeds),
			}).Info("Starting finshorts server")

			if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
				return err
			}

			log.Info("Done!")
			return nil
		},
	}
}

func loadConfigOrDefault(path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path":  path,
			"error": err,
		}).Warn("Config file not loaded, using defaults")
		return config.Default()
	}
	return cfg
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warnf("Invalid duration %q, using %s", value, fallback)
		return fallback
	}
	return d
}
