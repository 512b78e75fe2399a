package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finshorts/cache"
	"finshorts/models"
	"finshorts/scrape"
	"finshorts/store"
	"finshorts/summarize"

	log "github.com/sirupsen/logrus"
)

// ErrNoArticles is returned when a refresh run could not obtain a
// single article from any configured source.
var ErrNoArticles = errors.New("no articles available from any source")

// ServiceConfig wires the refresh pipeline together. Provider and
// Cache may be nil; Feeds may be empty if a provider is configured.
type ServiceConfig struct {
	Store      *store.Store
	Provider   *Provider
	Usage      *UsageTracker
	Feeds      []string
	MaxPerFeed int
	Workers    int
	Languages  []string
	Cache      *cache.SummaryCache

	// How long stored articles count as fresh. A non-forced refresh is
	// skipped while fresh articles exist.
	FreshFor time.Duration
}

// Service runs the ingestion pipeline: fetch from upstream sources,
// extract full text, gate by language, summarize, enhance titles and
// persist the result.
type Service struct {
	cfg  ServiceConfig
	gate *scrape.LanguageGate
}

func NewService(cfg ServiceConfig) *Service {
	if cfg.MaxPerFeed <= 0 {
		cfg.MaxPerFeed = 20
	}
	if cfg.FreshFor <= 0 {
		cfg.FreshFor = time.Hour
	}
	return &Service{
		cfg:  cfg,
		gate: scrape.NewLanguageGate(cfg.Languages),
	}
}

// Refresh regenerates the stored feed. Without force, the run is
// skipped while the store already holds fresh articles.
func (s *Service) Refresh(ctx context.Context, force bool) error {
	refreshTotal.Inc()

	if !force {
		count, err := s.cfg.Store.CountSince(ctx, time.Now().Add(-s.cfg.FreshFor))
		if err == nil && count > 0 {
			log.WithFields(log.Fields{
				"fresh": count,
			}).Debug("Skipping refresh, store is fresh")
			return nil
		}
	}

	sources := s.collect(ctx)
	if len(sources) == 0 {
		refreshErrors.Inc()
		return ErrNoArticles
	}

	sources = scrape.ExtractAll(ctx, sources, s.cfg.Workers)

	articles := make([]store.Article, 0, len(sources))
	for _, src := range sources {
		body := src.FullText
		if body == "" {
			body = src.Summary
		}

		if !s.gate.Allow(body) {
			log.WithFields(log.Fields{
				"id":    src.ID,
				"title": src.Title,
			}).Debug("Dropping article, language not allowed")
			continue
		}

		articles = append(articles, store.Article{
			ID:            src.ID,
			ImageURL:      src.ImageURL,
			Title:         summarize.EnhanceTitle(src.Title),
			OriginalTitle: src.Title,
			Snippet:       s.summary(ctx, src.ID, body, src.Title),
			Source:        src.Source,
			PublishedAt:   src.PublishedAt,
		})
	}

	if len(articles) == 0 {
		refreshErrors.Inc()
		return ErrNoArticles
	}

	if err := s.cfg.Store.UpsertArticles(ctx, articles); err != nil {
		refreshErrors.Inc()
		return fmt.Errorf("failed to store articles: %w", err)
	}

	articlesStored.Add(float64(len(articles)))
	return nil
}

// collect gathers candidate articles from the provider and every
// configured RSS feed. Individual source failures are logged, not
// fatal.
func (s *Service) collect(ctx context.Context) []models.SourceArticle {
	var sources []models.SourceArticle

	if s.cfg.Provider != nil {
		if s.cfg.Usage == nil || s.cfg.Usage.CanRequest() {
			articles, err := s.cfg.Provider.Fetch(ctx)
			if s.cfg.Usage != nil {
				s.cfg.Usage.Record()
			}
			if err != nil {
				upstreamRequests.WithLabelValues("provider", "error").Inc()
				log.WithFields(log.Fields{
					"error": err,
				}).Warn("Upstream provider fetch failed")
			} else {
				upstreamRequests.WithLabelValues("provider", "ok").Inc()
				sources = append(sources, articles...)
			}
		} else {
			log.Warn("Upstream request budget exhausted, relying on RSS feeds")
		}
	}

	for _, feedURL := range s.cfg.Feeds {
		articles, err := scrape.FetchFeed(feedURL, s.cfg.MaxPerFeed)
		if err != nil {
			upstreamRequests.WithLabelValues("rss", "error").Inc()
			log.WithFields(log.Fields{
				"url":   feedURL,
				"error": err,
			}).Warn("Feed fetch failed")
			continue
		}
		upstreamRequests.WithLabelValues("rss", "ok").Inc()
		sources = append(sources, articles...)
	}

	return sources
}

// summary returns the cached summary for the article or computes and
// caches a fresh one.
func (s *Service) summary(ctx context.Context, id, body, title string) string {
	if cached, ok := s.cfg.Cache.Get(ctx, id); ok {
		return cached
	}

	start := time.Now()
	result := summarize.Summarize(body, title)
	summarizeDuration.Observe(time.Since(start).Seconds())

	s.cfg.Cache.Set(ctx, id, result)
	return result
}
