package keywords

import (
	"strings"

	"github.com/searchsignal/keywordtree/pkg/tokenizer"
)

// ParentSelector picks the single keyword that best represents the
// document's primary topic. The topical vocabulary is optional and
// domain-tunable; when a candidate's tokens intersect it, the candidate
// earns a soft boost.
type ParentSelector struct {
	tok     *tokenizer.Tokenizer
	topical map[string]struct{}
}

// NewParentSelector builds a selector around a tokenizer and an optional
// topical vocabulary. Pass nil for vocabulary to disable the boost.
func NewParentSelector(tok *tokenizer.Tokenizer, vocabulary []string) *ParentSelector {
	var topical map[string]struct{}
	if len(vocabulary) > 0 {
		topical = make(map[string]struct{}, len(vocabulary))
		for _, w := range vocabulary {
			topical[strings.ToLower(w)] = struct{}{}
		}
	}
	return &ParentSelector{tok: tok, topical: topical}
}

// Choose returns the highest-ranked parent keyword, or nil when no
// candidate is eligible. A parent always has at least two tokens and is
// never a boilerplate-only or generic-only phrase. Callers fall back to
// the top-scored keyword when nil is returned but keywords exist.
func (s *ParentSelector) Choose(scored []ScoredKeyword, pc PageContext) *ScoredKeyword {
	if len(scored) == 0 {
		return nil
	}

	type pooled struct {
		kw     ScoredKeyword
		tokens []string
	}

	var eligible []pooled
	for _, kw := range scored {
		tokens := s.tok.Tokenize(kw.Text)
		if len(tokens) < 2 {
			continue
		}
		if s.isBoilerplatePhrase(tokens) && countNonSection(tokens) == 0 {
			continue
		}
		// A parent needs at least one token that is not a generic base.
		if countNonGeneric(tokens) == 0 {
			continue
		}
		eligible = append(eligible, pooled{kw: kw, tokens: tokens})
	}
	if len(eligible) == 0 {
		return nil
	}

	// Prefer candidates seeded by the title or headings; fall back to
	// the whole eligible pool when nothing matches.
	var pool []pooled
	for _, p := range eligible {
		if inText(p.kw.Text, pc.Title) || inText(p.kw.Text, pc.HeadingText) {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		pool = eligible
	}

	best := -1
	bestRank := 0.0
	for i, p := range pool {
		rank := s.rank(p.kw, p.tokens, pc)
		if best < 0 || rank > bestRank {
			best = i
			bestRank = rank
		}
	}

	// The pool filter already enforces multi-word parents; re-check
	// before returning in case the filter set ever changes.
	if len(pool[best].tokens) < 2 {
		best = -1
		for i, p := range pool {
			if len(p.tokens) < 2 {
				continue
			}
			rank := s.rank(p.kw, p.tokens, pc)
			if best < 0 || rank > bestRank {
				best = i
				bestRank = rank
			}
		}
		if best < 0 {
			return nil
		}
	}

	chosen := pool[best].kw
	return &chosen
}

// rank computes the weighted composite used to order parent candidates.
func (s *ParentSelector) rank(kw ScoredKeyword, tokens []string, pc PageContext) float64 {
	var lengthScore float64
	switch len(tokens) {
	case 2:
		lengthScore = 1.0
	case 3:
		lengthScore = 1.2
	case 4:
		lengthScore = 1.0
	default:
		lengthScore = 0.7
	}

	titleHit := 0.0
	if inText(kw.Text, pc.Title) {
		titleHit = 2.2
	}
	headingHit := 0.0
	if inText(kw.Text, pc.HeadingText) {
		headingHit = 1.6
	}
	urlHit := 0.0
	if inText(kw.Text, pc.URLTokens) {
		urlHit = 1.0
	}

	freqScore := float64(min(kw.Freq, 10)) / 10.0

	densityScore := 1.0
	if kw.Density > 3.0 {
		densityScore = 0.7
	}

	intentScore := 0.9
	switch InferIntent(kw.Text) {
	case IntentTransactional, IntentInformational:
		intentScore = 1.2
	}

	boilerplatePenalty := 1.0
	if s.isBoilerplatePhrase(tokens) || hasTemporalToken(tokens) {
		boilerplatePenalty = 0.8
	}
	urlPenalty := 1.0
	urlLower := strings.ToLower(pc.URLTokens)
	for term := range sectionTerms {
		if strings.Contains(urlLower, term) {
			urlPenalty = 0.8
			break
		}
	}
	topicalBoost := 1.0
	if s.hasTopicalToken(tokens) {
		topicalBoost = 1.1
	}

	return (0.25*kw.Score +
		0.20*titleHit +
		0.15*headingHit +
		0.10*urlHit +
		0.10*lengthScore +
		0.10*ParentSemanticQuality(kw.Text) +
		0.05*freqScore +
		0.03*densityScore +
		0.02*intentScore) * boilerplatePenalty * urlPenalty * topicalBoost
}

// ParentSemanticQuality is the parent-specific semantic scoring variant:
// stronger indicator rewards, question and comparison pattern bonuses,
// and a stricter common-word penalty. Clamped to [0.5, 2.0].
func ParentSemanticQuality(keyword string) float64 {
	lower := strings.ToLower(keyword)
	words := strings.Split(lower, " ")

	quality := 1.0
	for _, w := range words {
		if _, ok := parentIndicators[w]; ok {
			quality *= 1.4
		}
	}

	for _, pattern := range questionPatterns {
		if strings.Contains(lower, pattern) {
			quality *= 1.3
			break
		}
	}
	for _, pattern := range comparisonPatterns {
		if strings.Contains(lower, pattern) {
			quality *= 1.2
			break
		}
	}

	common := 0
	for _, w := range words {
		if _, ok := functionWords[w]; ok {
			common++
		}
	}
	if float64(common) > float64(len(words))*0.4 {
		quality *= 0.8
	}

	return clamp(quality, 0.5, 2.0)
}

func (s *ParentSelector) isBoilerplatePhrase(tokens []string) bool {
	for _, t := range tokens {
		if isSectionToken(t) {
			return true
		}
	}
	return false
}

func (s *ParentSelector) hasTopicalToken(tokens []string) bool {
	if s.topical == nil {
		return false
	}
	for _, t := range tokens {
		if _, ok := s.topical[t]; ok {
			return true
		}
	}
	return false
}

func countNonSection(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if !isSectionToken(t) {
			n++
		}
	}
	return n
}

func countNonGeneric(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if !isGenericBase(t) {
			n++
		}
	}
	return n
}

func hasTemporalToken(tokens []string) bool {
	for _, t := range tokens {
		if isTemporalToken(t) {
			return true
		}
	}
	return false
}
