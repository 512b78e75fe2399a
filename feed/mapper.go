// Package feed holds the client-side feed core: the raw-to-article
// mapper and the state machine that drives fetch, refresh and
// pagination.
package feed

import (
	"strings"

	"finshorts/models"
)

const (
	// Average reading speed used to derive the read-time estimate.
	wordsPerMinute = 225

	DefaultTitle    = "No Title"
	DefaultSummary  = "No Summary"
	DefaultSource   = "Unknown Source"
	DefaultImageURL = "https://placehold.co/600x400?text=finshorts"
)

// ToArticle normalizes a raw record into an Article. It is total and
// idempotent: it never fails, every missing field gets its documented
// default, and mapping the serialized form of an already-mapped article
// yields an equal Article.
func ToArticle(raw models.RawArticle) models.Article {
	title := raw.Title
	if title == "" {
		title = DefaultTitle
	}

	summary := raw.Snippet
	if summary == "" {
		summary = DefaultSummary
	}

	source := raw.Source
	if source == "" {
		source = DefaultSource
	}

	imageURL := raw.ImageURL
	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	return models.Article{
		ID:              raw.ID,
		ImageURL:        imageURL,
		Title:           title,
		OriginalTitle:   raw.OriginalTitle,
		Summary:         summary,
		Source:          source,
		ReadTimeMinutes: ReadTime(summary),
	}
}

// ReadTime estimates reading time in whole minutes from the summary,
// never less than one minute.
func ReadTime(summary string) int {
	words := len(strings.Fields(summary))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
