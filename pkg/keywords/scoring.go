package keywords

import (
	"math"
	"sort"
	"strings"
)

const (
	// minScore is the floor below which a scored candidate is dropped.
	minScore = 0.5
	// maxDensity rejects stuffed keywords outright (fraction of words).
	maxDensity = 0.05
	// penaltyDensity is where the density penalty starts to bite.
	penaltyDensity = 0.02
)

// Score computes a composite score for each candidate against the full
// combined page text and its prominence context, returning survivors
// sorted by score descending. Candidates below the minimum frequency or
// above the maximum density are dropped; so is anything scoring under
// the 0.5 floor, which also disposes of the negative scores a very high
// density penalty can produce.
func Score(candidates []string, fullText string, pc PageContext) []ScoredKeyword {
	textLower := strings.ToLower(fullText)
	totalWords := len(strings.Fields(textLower))
	if totalWords == 0 {
		return nil
	}

	// At least one occurrence, or 0.05% of the document words.
	minFreq := int(float64(totalWords) * 0.0005)
	if minFreq < 1 {
		minFreq = 1
	}

	var scored []ScoredKeyword
	for _, candidate := range candidates {
		freq := strings.Count(textLower, strings.ToLower(candidate))
		if freq < minFreq {
			continue
		}

		wordCount := len(strings.Split(candidate, " "))
		density := float64(freq*wordCount) / float64(totalWords)
		if density > maxDensity {
			continue
		}

		boost := ProminenceBoost(candidate, pc)

		// Diminishing returns for raw frequency.
		base := math.Pow(float64(freq), 0.8)

		penalty := 1.0
		if density > penaltyDensity {
			penalty = 1.0 - (density-penaltyDensity)*5
		}

		semantic := SemanticQuality(candidate)

		final := base * boost * lengthBonus(wordCount) * penalty * semantic
		if final < minScore {
			continue
		}

		scored = append(scored, ScoredKeyword{
			Text:          candidate,
			Score:         round2(final),
			Freq:          freq,
			Density:       round2(density * 100),
			Boost:         round2(boost),
			SemanticScore: round2(semantic),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Text < scored[j].Text
	})
	return scored
}

// ProminenceBoost returns the multiplicative boost for a keyword that
// appears in the page title, H1/H2 text, or URL tokens. The factors
// stack: a keyword present in all three earns 3.0*1.8*1.5.
func ProminenceBoost(keyword string, pc PageContext) float64 {
	boost := 1.0
	if inText(keyword, pc.Title) {
		boost *= 3.0
	}
	if inText(keyword, pc.HeadingText) {
		boost *= 1.8
	}
	if inText(keyword, pc.URLTokens) {
		boost *= 1.5
	}
	return boost
}

// SemanticQuality scores how informative a phrase looks on its surface:
// rewarded per high-value word and intent pattern, penalized per
// low-value word and for function-word dominance. Clamped to [0.1, 2.0].
func SemanticQuality(keyword string) float64 {
	lower := strings.ToLower(keyword)
	words := strings.Split(lower, " ")

	quality := 1.0
	for _, w := range words {
		if _, ok := highValueIndicators[w]; ok {
			quality *= 1.2
		} else if _, ok := lowValueIndicators[w]; ok {
			quality *= 0.9
		}
	}

	for _, pattern := range intentPatterns {
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
	if float64(common) > float64(len(words))*0.5 {
		quality *= 0.8
	}

	return clamp(quality, 0.1, 2.0)
}

// lengthBonus favors the 2-4 word sweet spot.
func lengthBonus(wordCount int) float64 {
	switch wordCount {
	case 1:
		return 0.5
	case 2:
		return 1.0
	case 3:
		return 1.2
	case 4:
		return 1.0
	default:
		return 0.7
	}
}

// inText reports a case-insensitive substring match.
func inText(needle, haystack string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
