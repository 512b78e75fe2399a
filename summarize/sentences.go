package summarize

import (
	"regexp"
	"sort"
	"strings"
)

const (
	defaultKeywordCount = 8
	defaultMaxSentences = 4
)

var (
	wordRe    = regexp.MustCompile(`[A-Za-z0-9_]+`)
	numericRe = regexp.MustCompile(`\d+%|[$€£¥]\d+|\d+\.\d+`)
)

// Summarize produces an extractive summary of an article body. The
// title is used to penalize sentences that only restate the headline.
func Summarize(text, title string) string {
	text = CleanArticleText(text)
	if text == "" {
		return "No summary available."
	}
	keywords := ExtractKeywords(text, defaultKeywordCount)
	sentences := ExtractImportantSentences(text, keywords, defaultMaxSentences, title)
	return FormatSummary(sentences)
}

// ExtractImportantSentences scores every sentence and returns the top
// maxSentences in document order. Scoring favors keyword hits, early
// position, medium length and concrete figures, and penalizes overlap
// with the title.
func ExtractImportantSentences(text string, keywords []string, maxSentences int, title string) []string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		if text == "" {
			return nil
		}
		return []string{strings.TrimSpace(text)}
	}

	titleWords := wordSet(title)
	scores := make([]int, len(sentences))

	for i, sentence := range sentences {
		lower := strings.ToLower(sentence)
		sentenceWords := wordSet(sentence)

		// Title overlap: restating the headline adds nothing, fresh
		// information does.
		if len(titleWords) > 0 {
			overlap := overlapRatio(sentenceWords, titleWords)
			switch {
			case overlap > 0.7:
				scores[i] -= 5
			case overlap > 0.5:
				scores[i] -= 3
			case overlap < 0.2:
				scores[i] += 2
			}
		}

		// Earlier keywords carry more weight.
		for j, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				scores[i] += len(keywords) - j
			}
		}

		// Position in the article.
		switch {
		case i == 0:
			scores[i] += 5
		case i == 1:
			scores[i] += 3
		case i < len(sentences)/3:
			scores[i] += 2
		case i > len(sentences)*2/3:
			scores[i]++
		}

		// Prefer medium-length sentences.
		words := len(strings.Fields(sentence))
		switch {
		case words >= 10 && words <= 25:
			scores[i] += 2
		case words < 5:
			scores[i] -= 2
		case words > 40:
			scores[i]--
		}

		// Concrete figures are usually the point of market news.
		if numericRe.MatchString(sentence) {
			scores[i] += 2
		}
	}

	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})
	if len(indices) > maxSentences {
		indices = indices[:maxSentences]
	}

	// Keep the lead sentence in the mix unless it is tiny or just the
	// headline again.
	if !contains(indices, 0) && len(strings.Fields(sentences[0])) >= 5 {
		if overlapRatio(wordSet(sentences[0]), titleWords) < 0.6 {
			if len(indices) >= maxSentences && len(indices) > 0 {
				worst := 0
				for k, idx := range indices {
					if scores[idx] < scores[indices[worst]] {
						worst = k
					}
				}
				indices = append(indices[:worst], indices[worst+1:]...)
			}
			indices = append(indices, 0)
		}
	}

	// Back to document order so the summary reads naturally.
	sort.Ints(indices)

	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		sentence := strings.TrimSpace(sentences[idx])
		if !strings.ContainsAny(sentence[len(sentence)-1:], ".!?") {
			sentence += "."
		}
		selected = append(selected, sentence)
	}
	return selected
}

func wordSet(text string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		set[word] = struct{}{}
	}
	return set
}

func overlapRatio(words, reference map[string]struct{}) float64 {
	if len(reference) == 0 {
		return 0
	}
	shared := 0
	for word := range words {
		if _, ok := reference[word]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(reference))
}

func contains(indices []int, target int) bool {
	for _, idx := range indices {
		if idx == target {
			return true
		}
	}
	return false
}
