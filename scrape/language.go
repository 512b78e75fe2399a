package scrape

import (
	lingua "github.com/pemistahl/lingua-go"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Languages the detector can discriminate between. The gate only keeps
// the configured subset, the rest exist to give lingua contrast.
var detectorLanguages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Bokmal,
	lingua.Swedish,
}

var isoToLingua = map[string]lingua.Language{
	"en": lingua.English,
	"de": lingua.German,
	"fr": lingua.French,
	"es": lingua.Spanish,
	"pt": lingua.Portuguese,
	"it": lingua.Italian,
	"nl": lingua.Dutch,
	"nb": lingua.Bokmal,
	"sv": lingua.Swedish,
}

// LanguageGate drops articles that are not written in one of the
// configured languages before they reach the summarizer. A nil gate
// allows everything.
type LanguageGate struct {
	detector lingua.LanguageDetector
	allowed  map[lingua.Language]struct{}
}

// NewLanguageGate builds a gate for the given ISO 639-1 codes. Unknown
// codes are logged and skipped; an empty list disables the gate.
func NewLanguageGate(codes []string) *LanguageGate {
	allowed := map[lingua.Language]struct{}{}
	for _, code := range codes {
		lang, ok := isoToLingua[code]
		if !ok {
			log.Warnf("Unsupported language code %q, skipping", code)
			continue
		}
		allowed[lang] = struct{}{}
	}
	if len(allowed) == 0 {
		return nil
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectorLanguages...).
		Build()

	return &LanguageGate{detector: detector, allowed: allowed}
}

// Allow reports whether the text is confidently written in one of the
// allowed languages. Short texts that cannot be classified pass
// through.
func (g *LanguageGate) Allow(text string) bool {
	if g == nil || text == "" {
		return true
	}

	detected, ok := g.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}

	_, allowed := g.allowed[detected]
	return allowed
}

// AllowedCodes lists the configured ISO codes, for logging.
func (g *LanguageGate) AllowedCodes() []string {
	if g == nil {
		return nil
	}
	return lo.FilterMap(lo.Keys(isoToLingua), func(code string, _ int) (string, bool) {
		_, ok := g.allowed[isoToLingua[code]]
		return code, ok
	})
}
