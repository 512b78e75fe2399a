// Package server exposes the news API consumed by the feed clients.
package server

import (
	"context"
	"strconv"
	"time"

	"finshorts/models"
	"finshorts/store"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const defaultListLimit = 50

// Refresher regenerates the stored feed from the upstream sources.
type Refresher interface {
	Refresh(ctx context.Context, force bool) error
}

type Config struct {
	Store *store.Store

	// Service may be nil, in which case refresh requests are ignored
	// and the update endpoint reports failure.
	Service Refresher

	// Maximum number of articles returned by /api/news.
	ListLimit int
}

// New returns a fiber.App serving the finshorts news API.
func New(config *Config) *fiber.App {
	limit := config.ListLimit
	if limit <= 0 {
		limit = defaultListLimit
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Middleware to track the latency of each request
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.WithFields(log.Fields{
			"method":  c.Method(),
			"route":   c.Route().Path,
			"status":  c.Response().StatusCode(),
			"latency": time.Since(start),
		}).Info("Request")
		return err
	})

	app.Use(requestid.New(requestid.ConfigDefault))
	app.Use(compress.New())

	app.Get("/api/news", func(c *fiber.Ctx) error {
		refresh := c.Query("refresh", "") == "true"

		if refresh && config.Service != nil {
			// A failed forced refresh still serves whatever the store
			// holds; the client asked for fresher data, not for an
			// error page.
			if err := config.Service.Refresh(c.UserContext(), true); err != nil {
				log.WithFields(log.Fields{
					"error": err,
				}).Warn("Forced refresh failed, serving stored articles")
			}
		}

		rows, err := config.Store.ListArticles(c.UserContext(), limit)
		if err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("Error listing articles")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load articles",
			})
		}

		articles := make([]models.RawArticle, 0, len(rows))
		for i, row := range rows {
			id := row.ID
			if id == "" {
				id = strconv.Itoa(i + 1)
			}
			raw := models.RawArticle{
				ID:            id,
				ImageURL:      row.ImageURL,
				Title:         row.Title,
				OriginalTitle: row.OriginalTitle,
				Snippet:       row.Snippet,
				Source:        row.Source,
			}
			if !row.PublishedAt.IsZero() {
				raw.PublishedAt = row.PublishedAt.Format(time.RFC3339)
			}
			articles = append(articles, raw)
		}

		return c.JSON(articles)
	})

	app.Post("/api/news/update", func(c *fiber.Ctx) error {
		if config.Service == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "no update pipeline configured",
			})
		}

		if err := config.Service.Refresh(c.UserContext(), true); err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("Forced update failed")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "update failed",
			})
		}

		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
