// Package client implements the HTTP client for the finshorts news API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finshorts/models"

	log "github.com/sirupsen/logrus"
)

// RequestTimeout bounds every request. There is no retry; a timed-out
// call surfaces as ErrNetwork and the caller decides whether to go
// again.
const RequestTimeout = 10 * time.Second

// Client talks to the news API at a fixed base URL. The base URL is
// resolved once at startup by the config package and injected here.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// FetchArticles issues GET {base}/news and returns the raw article
// records. With refresh set, the server is asked to bypass its cache
// and recompute the feed.
func (c *Client) FetchArticles(ctx context.Context, refresh bool) ([]models.RawArticle, error) {
	url := c.baseURL + "/news"
	if refresh {
		url += "?refresh=true"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	log.WithFields(log.Fields{
		"url":     url,
		"refresh": refresh,
	}).Debug("Fetching articles")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var articles []models.RawArticle
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	log.WithFields(log.Fields{
		"count": len(articles),
	}).Debug("Fetched articles")

	return articles, nil
}

// ForceUpdate issues POST {base}/news/update, asking the server to
// regenerate its feed from the upstream sources. Succeeds only on 200;
// the response body is ignored.
func (c *Client) ForceUpdate(ctx context.Context) error {
	url := c.baseURL + "/news/update"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	log.WithFields(log.Fields{
		"url": url,
	}).Debug("Requesting server-side update")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &HTTPError{Status: resp.StatusCode}
	}

	return nil
}
