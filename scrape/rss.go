// Package scrape pulls candidate articles from RSS feeds and extracts
// their full text for summarization.
package scrape

import (
	"fmt"
	"time"

	"finshorts/models"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	log "github.com/sirupsen/logrus"
)

// FetchFeed retrieves and parses an RSS/Atom feed, returning up to max
// article candidates.
func FetchFeed(url string, max int) ([]models.SourceArticle, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", url, err)
	}

	count := len(feed.Items)
	if max > 0 && count > max {
		count = max
	}

	articles := make([]models.SourceArticle, 0, count)
	for _, item := range feed.Items[:count] {
		id := item.GUID
		if id == "" && item.Link != "" {
			// Stable fallback id derived from the link
			id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(item.Link)).String()
		}

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		source := feed.Title
		if source == "" {
			source = url
		}

		article := models.SourceArticle{
			ID:          id,
			URL:         item.Link,
			Title:       item.Title,
			Summary:     item.Description,
			Source:      source,
			PublishedAt: publishedAt,
		}
		if item.Image != nil {
			article.ImageURL = item.Image.URL
		}

		articles = append(articles, article)
	}

	log.WithFields(log.Fields{
		"url":   url,
		"count": len(articles),
	}).Info("Fetched feed")

	return articles, nil
}
