package models

import "time"

// RawArticle is an article record as it appears on the wire, both in
// the /api/news response and in storage. Every field is optional.
type RawArticle struct {
	ID            string `json:"id"`
	ImageURL      string `json:"image_url"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title,omitempty"`
	Snippet       string `json:"snippet"`
	Source        string `json:"source"`
	PublishedAt   string `json:"published_at,omitempty"`
}

// Article is the normalized, immutable feed entity. Missing raw fields
// are replaced by defaults and the read time is always derived from the
// summary, never taken from the wire.
type Article struct {
	ID              string
	ImageURL        string
	Title           string
	OriginalTitle   string
	Summary         string
	Source          string
	ReadTimeMinutes int
}

// SourceArticle is an article on its way through the ingestion
// pipeline, before summarization has produced the wire form.
type SourceArticle struct {
	ID          string
	URL         string
	Title       string
	Summary     string
	FullText    string
	ImageURL    string
	Source      string
	PublishedAt time.Time
}

// FetchStartedEvent fired when a feed fetch goes out
type FetchStartedEvent struct {
	Refresh bool
}

// ArticlesReplacedEvent fired when a fetch replaced the feed
type ArticlesReplacedEvent struct {
	Articles []Article
}

// FetchFinishedEvent fired when a fetch completed without changing the
// feed (empty response)
type FetchFinishedEvent struct{}

// FetchFailedEvent fired when a fetch or force update failed. Retry
// re-invokes the operation that failed.
type FetchFailedEvent struct {
	Err   error
	Retry func()
}
