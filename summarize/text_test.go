package summarize_test

import (
	"testing"

	"finshorts/summarize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanArticleText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "empty text",
			text:     "",
			expected: "",
		},
		{
			name:     "subscription prompt stripped",
			text:     "Shares rose sharply. Subscribe to our newsletter for updates. Profit doubled.",
			expected: "Shares rose sharply. Profit doubled.",
		},
		{
			name:     "social footer stripped",
			text:     "Revenue grew again. Follow us on all platforms.",
			expected: "Revenue grew again.",
		},
		{
			name:     "whitespace collapsed",
			text:     "Revenue \n\n grew   again.",
			expected: "Revenue grew again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summarize.CleanArticleText(tt.text))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "single sentence",
			text:     "Markets closed higher today.",
			expected: []string{"Markets closed higher today."},
		},
		{
			name:     "three sentences with mixed punctuation",
			text:     "First sentence here. Second one follows! Was there a third?",
			expected: []string{"First sentence here.", "Second one follows!", "Was there a third?"},
		},
		{
			name:     "decimal numbers do not split",
			text:     "The stock rose 2.5 percent today. Analysts were surprised.",
			expected: []string{"The stock rose 2.5 percent today.", "Analysts were surprised."},
		},
		{
			name:     "no terminal punctuation",
			text:     "markets keep climbing",
			expected: []string{"markets keep climbing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summarize.SplitSentences(tt.text))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
		expected  string
	}{
		{
			name:      "no sentences",
			sentences: nil,
			expected:  "No summary available.",
		},
		{
			name:      "joined with single spaces",
			sentences: []string{"The market rose.", "Profits doubled."},
			expected:  "The market rose. Profits doubled.",
		},
		{
			name:      "capitalized and terminated",
			sentences: []string{"hello world"},
			expected:  "Hello world.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summarize.FormatSummary(tt.sentences))
		})
	}
}

func TestSummarize(t *testing.T) {
	text := "Acme Corp reported revenue of 12.5 billion dollars for the quarter, well above expectations. " +
		"The company credited strong demand for its cloud division. " +
		"Its shares gained 8% in after-hours trading on the news. " +
		"Analysts had worried about slowing growth earlier in the year. " +
		"The chief executive said the momentum should continue into next quarter. " +
		"Competitors have struggled to match the company's pricing. " +
		"Subscribe to our newsletter for more updates."

	summary := summarize.Summarize(text, "Acme beats expectations")

	require.NotEmpty(t, summary)
	assert.Contains(t, summary, "12.5 billion")
	assert.NotContains(t, summary, "Subscribe to our newsletter")
	assert.Regexp(t, `[.!?]$`, summary)
}

func TestSummarizeEmptyText(t *testing.T) {
	assert.Equal(t, "No summary available.", summarize.Summarize("", "Title"))
}
