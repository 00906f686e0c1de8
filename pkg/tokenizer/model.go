package tokenizer

import (
	"strings"
	"sync"
)

// Model is the linguistic resource handle consulted during tokenization:
// a stopword set plus lemma lookup data. It is built once, treated as
// read-only afterwards, and safe for concurrent use.
type Model struct {
	stopwords map[string]struct{}
	lemmas    map[string]string
}

var (
	defaultModelOnce sync.Once
	defaultModel     *Model
)

// DefaultModel returns the process-wide English model, building it on
// first use.
func DefaultModel() *Model {
	defaultModelOnce.Do(func() {
		defaultModel = &Model{
			stopwords: stopwords,
			lemmas:    irregularLemmas,
		}
	})
	return defaultModel
}

// IsStopword reports whether word is excluded from token output.
func (m *Model) IsStopword(word string) bool {
	_, ok := m.stopwords[word]
	return ok
}

// Lemma maps a lowercased word to its base form. Irregular forms come
// from a lookup table; regular forms go through suffix stripping.
func (m *Model) Lemma(word string) string {
	if base, ok := m.lemmas[word]; ok {
		return base
	}
	return stripSuffix(word)
}

// irregularLemmas covers common irregular plurals and verb forms that
// suffix stripping would mangle.
var irregularLemmas = map[string]string{
	"children": "child",
	"men":      "man",
	"women":    "woman",
	"people":   "person",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"geese":    "goose",
	"leaves":   "leaf",
	"lives":    "life",
	"knives":   "knife",
	"wives":    "wife",
	"analyses": "analysis",
	"criteria": "criterion",
	"data":     "datum",
	"media":    "medium",
	"indices":  "index",
	"matrices": "matrix",
	"went":     "go",
	"gone":     "go",
	"bought":   "buy",
	"sold":     "sell",
	"ran":      "run",
}

// stripSuffix applies conservative plural stripping. Aggressive stemming
// (-ing, -ed) produces non-words that no longer substring-match page
// text, so only noun plurals are normalized.
func stripSuffix(word string) string {
	n := len(word)
	switch {
	case n > 4 && strings.HasSuffix(word, "ies"):
		return word[:n-3] + "y"
	case n > 4 && strings.HasSuffix(word, "sses"):
		return word[:n-2]
	case n > 4 && (strings.HasSuffix(word, "shes") || strings.HasSuffix(word, "ches") ||
		strings.HasSuffix(word, "xes") || strings.HasSuffix(word, "zes")):
		return word[:n-2]
	case n > 3 && word[n-1] == 's' && word[n-2] != 's' && word[n-2] != 'u' && word[n-2] != 'i':
		return word[:n-1]
	}
	return word
}
