package summarize_test

import (
	"testing"

	"finshorts/summarize"

	"github.com/stretchr/testify/assert"
)

func TestEnhanceTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "empty title",
			title:    "",
			expected: "",
		},
		{
			name:     "ticker symbol removed",
			title:    "Apple (NASDAQ:AAPL) beats estimates",
			expected: "Apple beats estimates",
		},
		{
			name:     "multiple tickers removed",
			title:    "Apple (NASDAQ:AAPL) and Tesla (NASDAQ:TSLA) rally",
			expected: "Apple and Tesla rally",
		},
		{
			name:     "breaking prefix removed",
			title:    "BREAKING: Fed cuts rates",
			expected: "Fed cuts rates",
		},
		{
			name:     "update prefix removed",
			title:    "Update: Oil supply steady",
			expected: "Oil supply steady",
		},
		{
			name:     "filler attribution removed",
			title:    "Tesla deliveries surge, analysts say",
			expected: "Tesla deliveries surge",
		},
		{
			name:     "trailing ellipsis removed",
			title:    "Oil prices climb...",
			expected: "Oil prices climb",
		},
		{
			name:     "first letter capitalized",
			title:    "markets rally on jobs data",
			expected: "Markets rally on jobs data",
		},
		{
			name:     "clean title untouched",
			title:    "Nvidia posts record quarter",
			expected: "Nvidia posts record quarter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summarize.EnhanceTitle(tt.title))
		})
	}
}
