package summarize

import (
	"regexp"
	"sort"
	"strings"
)

var nonWordRe = regexp.MustCompile(`[^a-z0-9\s]`)

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a an the and or but if because as what
		when where how who which this that these those to in on at by is are
		was were be been being have has had do does did of for with about
		against between into through during before after above below from up
		down out off over under again further then once here there all any
		both each few more most other some such no nor not only own same so
		than too very can will just should now its it he she they them his
		her their we you your our my me i said says say would could also`) {
		stopwords[w] = struct{}{}
	}
}

// ExtractKeywords returns the most frequent meaningful terms of the
// text, most frequent first. Ties break alphabetically so the result is
// deterministic.
func ExtractKeywords(text string, n int) []string {
	text = nonWordRe.ReplaceAllString(strings.ToLower(text), "")

	counts := map[string]int{}
	for _, word := range strings.Fields(text) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		counts[word]++
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > n {
		words = words[:n]
	}
	return words
}
