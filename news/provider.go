// Package news turns upstream market-news sources into the summarized
// articles the API serves.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"finshorts/models"

	log "github.com/sirupsen/logrus"
)

const providerTimeout = 10 * time.Second

// Provider fetches raw articles from a MarketAux-style JSON news API.
type Provider struct {
	baseURL string
	token   string
	symbols []string
	limit   int
	http    *http.Client
}

func NewProvider(baseURL, token string, symbols []string, limit int) *Provider {
	return &Provider{
		baseURL: baseURL,
		token:   token,
		symbols: symbols,
		limit:   limit,
		http:    &http.Client{Timeout: providerTimeout},
	}
}

type providerResponse struct {
	Data []providerArticle `json:"data"`
}

type providerArticle struct {
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Snippet     string `json:"snippet"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// Fetch pulls the latest articles for the configured symbols.
func (p *Provider) Fetch(ctx context.Context) ([]models.SourceArticle, error) {
	params := url.Values{}
	params.Set("api_token", p.token)
	params.Set("symbols", strings.Join(p.symbols, ","))
	params.Set("limit", strconv.Itoa(p.limit))

	endpoint := p.baseURL + "/v1/news/all?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var parsed providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("provider response decode failed: %w", err)
	}

	articles := make([]models.SourceArticle, 0, len(parsed.Data))
	for _, raw := range parsed.Data {
		body := raw.Description
		if body == "" {
			body = raw.Snippet
		}

		publishedAt, _ := time.Parse(time.RFC3339, raw.PublishedAt)

		articles = append(articles, models.SourceArticle{
			ID:          raw.UUID,
			URL:         raw.URL,
			Title:       raw.Title,
			Summary:     body,
			ImageURL:    raw.ImageURL,
			Source:      raw.Source,
			PublishedAt: publishedAt,
		})
	}

	log.WithFields(log.Fields{
		"symbols": p.symbols,
		"count":   len(articles),
	}).Info("Fetched upstream articles")

	return articles, nil
}
