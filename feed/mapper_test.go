package feed_test

import (
	"strings"
	"testing"

	"finshorts/feed"
	"finshorts/models"

	"github.com/stretchr/testify/assert"
)

func TestToArticleDefaults(t *testing.T) {
	tests := []struct {
		name     string
		raw      models.RawArticle
		expected models.Article
	}{
		{
			name: "empty record gets every default",
			raw:  models.RawArticle{},
			expected: models.Article{
				ImageURL:        feed.DefaultImageURL,
				Title:           feed.DefaultTitle,
				Summary:         feed.DefaultSummary,
				Source:          feed.DefaultSource,
				ReadTimeMinutes: 1,
			},
		},
		{
			name: "complete record passes through",
			raw: models.RawArticle{
				ID:            "abc",
				ImageURL:      "https://example.com/img.png",
				Title:         "Apple beats estimates",
				OriginalTitle: "Apple (NASDAQ:AAPL) beats estimates",
				Snippet:       "Apple reported record revenue.",
				Source:        "Example Wire",
			},
			expected: models.Article{
				ID:              "abc",
				ImageURL:        "https://example.com/img.png",
				Title:           "Apple beats estimates",
				OriginalTitle:   "Apple (NASDAQ:AAPL) beats estimates",
				Summary:         "Apple reported record revenue.",
				Source:          "Example Wire",
				ReadTimeMinutes: 1,
			},
		},
		{
			name: "missing title only",
			raw: models.RawArticle{
				ID:       "x",
				ImageURL: "https://example.com/x.png",
				Snippet:  "Something happened.",
				Source:   "Wire",
			},
			expected: models.Article{
				ID:              "x",
				ImageURL:        "https://example.com/x.png",
				Title:           feed.DefaultTitle,
				Summary:         "Something happened.",
				Source:          "Wire",
				ReadTimeMinutes: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, feed.ToArticle(tt.raw))
		})
	}
}

func TestToArticleIdempotent(t *testing.T) {
	first := feed.ToArticle(models.RawArticle{ID: "1", Title: "Markets close higher"})

	// Map the serialized form of an already-mapped article
	second := feed.ToArticle(models.RawArticle{
		ID:            first.ID,
		ImageURL:      first.ImageURL,
		Title:         first.Title,
		OriginalTitle: first.OriginalTitle,
		Snippet:       first.Summary,
		Source:        first.Source,
	})

	assert.Equal(t, first, second)
}

func TestReadTime(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		expected int
	}{
		{name: "one word", words: 1, expected: 1},
		{name: "exactly one minute", words: 225, expected: 1},
		{name: "just over one minute", words: 226, expected: 2},
		{name: "450 words", words: 450, expected: 2},
		{name: "no words", words: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := strings.TrimSpace(strings.Repeat("word ", tt.words))
			assert.Equal(t, tt.expected, feed.ReadTime(summary))
		})
	}
}
