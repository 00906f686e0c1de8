package keywords

import (
	"strings"
	"unicode"

	"github.com/searchsignal/keywordtree/pkg/tokenizer"
)

const (
	minCandidateLen = 3
	maxCandidateLen = 50
)

// GenerateCandidates builds unigram, bigram, and trigram surface strings
// from the tokenized text and filters out low-value phrases. The result
// is deduplicated and ordered by first occurrence, so repeated calls on
// the same input produce the same slice.
func GenerateCandidates(tok *tokenizer.Tokenizer, text string) []string {
	tokens := tok.Tokenize(text)

	seen := make(map[string]struct{}, len(tokens)*3)
	candidates := make([]string, 0, len(tokens))
	add := func(candidate string) {
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}
		if keepCandidate(candidate) {
			candidates = append(candidates, candidate)
		}
	}

	for i, t := range tokens {
		add(t)
		if i+1 < len(tokens) {
			add(t + " " + tokens[i+1])
		}
		if i+2 < len(tokens) {
			add(t + " " + tokens[i+1] + " " + tokens[i+2])
		}
	}
	return candidates
}

// keepCandidate applies the candidate filters in order: length bounds,
// alphabetic-only, stop phrases, low-value single words, and
// function-word dominance for multi-word phrases.
func keepCandidate(candidate string) bool {
	if len(candidate) < minCandidateLen || len(candidate) > maxCandidateLen {
		return false
	}
	if !isAlphabeticPhrase(candidate) {
		return false
	}
	lower := strings.ToLower(candidate)
	if _, ok := stopPhrases[lower]; ok {
		return false
	}

	words := strings.Split(lower, " ")
	if len(words) == 1 {
		_, low := lowValueWords[lower]
		return !low
	}

	common := 0
	for _, w := range words {
		if _, ok := functionWords[w]; ok {
			common++
		}
	}
	if common == len(words) {
		return false
	}
	if len(words) >= 3 && float64(common) >= float64(len(words))*0.6 {
		return false
	}
	return true
}

func isAlphabeticPhrase(s string) bool {
	for _, r := range s {
		if r != ' ' && !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
