package summarize

import (
	"regexp"
	"strings"
)

// Ticker suffixes like (NASDAQ:NVDA) or (NYSE:AAPL).
var tickerRe = regexp.MustCompile(`\s*\([A-Z]+:[A-Z]+\)`)

var ellipsisRe = regexp.MustCompile(`\s*\.{3,}$`)

var redundantPrefixes = []string{
	"BREAKING: ", "Breaking: ", "UPDATE: ", "Update: ", "EXCLUSIVE: ", "Exclusive: ",
	"REPORT: ", "Report: ", "WATCH: ", "Watch: ", "JUST IN: ", "Just In: ",
	"VIDEO: ", "Video: ", "ANALYSIS: ", "Analysis: ", "FEATURED: ", "Featured: ",
	"ALERT: ", "Alert: ", "TRENDING: ", "Trending: ",
}

var fillerPhrases = []string{
	" according to sources", " according to reports", " according to insiders",
	" sources say", " reports indicate", " experts say", " analysts believe",
	", experts say", ", analysts say", ", sources say", ", reports indicate",
	" - report", " - sources", " - analysts", " - insiders", " report claims",
	" analysts report", " sources claim", ", report says", ", report claims",
}

// EnhanceTitle makes a headline more concise: ticker symbols, hype
// prefixes, filler attributions and trailing ellipses are removed. The
// original title is kept alongside the enhanced one on the wire, so
// this is a display transformation, not a destructive one.
func EnhanceTitle(title string) string {
	if title == "" {
		return title
	}

	title = tickerRe.ReplaceAllString(title, "")

	for _, prefix := range redundantPrefixes {
		if strings.HasPrefix(title, prefix) {
			title = title[len(prefix):]
			break
		}
	}

	title = ellipsisRe.ReplaceAllString(strings.TrimSpace(title), "")

	for _, phrase := range fillerPhrases {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
		title = pattern.ReplaceAllString(title, "")
	}

	title = strings.Join(strings.Fields(title), " ")

	return capitalize(title)
}
