// Package tokenizer turns free text into normalized word tokens:
// lowercased lemma-like forms with stopwords, single characters, and
// non-alphabetic runs removed. Every downstream pipeline stage consumes
// its output, so candidate phrases and page text are guaranteed to be
// normalized the same way.
package tokenizer

import (
	"iter"
	"strings"
	"unicode"
)

// Tokenizer produces normalized tokens using an explicit Model handle.
// The zero value is not usable; construct with New.
type Tokenizer struct {
	model *Model
}

// New returns a Tokenizer backed by the given model. Pass
// DefaultModel() unless a custom stopword/lemma table is needed.
func New(model *Model) *Tokenizer {
	return &Tokenizer{model: model}
}

// Tokens returns a lazy, finite, restartable sequence of normalized
// tokens. Empty input yields an empty sequence.
func (t *Tokenizer) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		emit := func(word string) bool {
			if len(word) <= 1 {
				return true
			}
			word = strings.ToLower(word)
			if t.model.IsStopword(word) {
				return true
			}
			lemma := t.model.Lemma(word)
			if len(lemma) <= 1 || t.model.IsStopword(lemma) {
				return true
			}
			return yield(lemma)
		}
		for i, r := range text {
			if unicode.IsLetter(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !emit(text[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			emit(text[start:])
		}
	}
}

// Tokenize collects the token sequence into a slice.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	for tok := range t.Tokens(text) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// TokenSet collects the token sequence into a set, dropping duplicates.
func (t *Tokenizer) TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for tok := range t.Tokens(text) {
		set[tok] = struct{}{}
	}
	return set
}
