// Package summarize produces short extractive summaries and display
// titles for news articles. Everything here is pure string processing:
// keyword frequency ranking, sentence scoring and boilerplate removal.
package summarize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Common boilerplate found at the edges of scraped article bodies:
// calls to action, subscription prompts, copyright and social footers.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(For more information|To learn more|For further details|Read more|Find out more|Click here for more).+?(website|site|page|URL).*?\.`),
	regexp.MustCompile(`(?i)Visit\s+.+?\s+for\s+more\s+.*?\.`),
	regexp.MustCompile(`(?i)Click\s+here\s+to\s+.*?\.`),
	regexp.MustCompile(`(?i)Learn\s+more\s+(at\s+)?.*?\.`),
	regexp.MustCompile(`(?i)Read\s+the\s+full\s+.*?\.`),
	regexp.MustCompile(`(?i)Follow\s+this\s+link\s+.*?\.`),
	regexp.MustCompile(`(?i)Subscribe\s+to\s+our\s+newsletter.*?\.`),
	regexp.MustCompile(`(?i)Sign\s+up\s+for\s+our\s+.*?\.`),
	regexp.MustCompile(`(?i)Follow\s+us\s+on\s+.*?\.`),
	regexp.MustCompile(`(?i)Like\s+us\s+on\s+.*?\.`),
	regexp.MustCompile(`(?i)Share\s+this\s+.*?\.`),
	regexp.MustCompile(`©\s*\d{4}.*?\.\s*`),
	regexp.MustCompile(`(?i)Copyright\s*©.*?\.\s*`),
	regexp.MustCompile(`(?i)All\s+rights\s+reserved.*?\.`),
	regexp.MustCompile(`(?i)The\s+content\s+is\s+provided\s+for\s+information\s+purposes\s+only.*?\.`),
	regexp.MustCompile(`(?i)This\s+article\s+was\s+originally\s+published\s+.*?\.`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanArticleText strips boilerplate phrases and collapses whitespace.
func CleanArticleText(text string) string {
	if text == "" {
		return ""
	}
	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// SplitSentences breaks text into sentences on terminal punctuation
// followed by whitespace and an upper-case letter.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		// Swallow runs of terminal punctuation.
		end := i
		for end+1 < len(runes) && (runes[end+1] == '.' || runes[end+1] == '!' || runes[end+1] == '?') {
			end++
		}
		// A boundary needs whitespace and a following capital letter.
		next := end + 1
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next == end+1 && next < len(runes) {
			i = end
			continue
		}
		if next >= len(runes) || unicode.IsUpper(runes[next]) {
			sentence := strings.TrimSpace(string(runes[start : end+1]))
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = next
			i = next - 1
		} else {
			i = end
		}
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

// FormatSummary joins the selected sentences into a single readable
// paragraph with normalized spacing, capitalization and punctuation.
func FormatSummary(sentences []string) string {
	if len(sentences) == 0 {
		return "No summary available."
	}

	summary := strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.Join(sentences, " "), " "))
	summary = strings.ReplaceAll(summary, "..", ".")
	summary = capitalize(summary)

	if summary != "" && !strings.ContainsAny(summary[len(summary)-1:], ".!?") {
		summary += "."
	}

	return summary
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if unicode.IsLower(r) {
		return string(unicode.ToUpper(r)) + s[size:]
	}
	return s
}
