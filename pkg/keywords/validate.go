package keywords

import "strings"

const (
	// Validation thresholds. Scores below validationMinScore or
	// frequencies below validationMinFreq mark one-off noise; densities
	// above validationMaxDensity (percent) mark over-optimization.
	validationMinScore   = 1.5
	validationMinFreq    = 2
	validationMaxDensity = 5.0
)

// Validate post-filters scored keywords: minimum score and frequency,
// maximum density, generic-phrase substring blacklist, and the
// common-single-word blacklist. Input order is preserved among
// survivors.
func Validate(scored []ScoredKeyword) []ScoredKeyword {
	validated := make([]ScoredKeyword, 0, len(scored))
	for _, kw := range scored {
		if kw.Score < validationMinScore {
			continue
		}
		if kw.Freq < validationMinFreq {
			continue
		}
		if kw.Density > validationMaxDensity {
			continue
		}
		if matchesGenericPattern(kw.Text) {
			continue
		}
		if isCommonSingleWord(kw.Text) {
			continue
		}
		validated = append(validated, kw)
	}
	return validated
}

func matchesGenericPattern(keyword string) bool {
	lower := strings.ToLower(keyword)
	for _, pattern := range genericPhrasePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

func isCommonSingleWord(keyword string) bool {
	if strings.Contains(keyword, " ") {
		return false
	}
	_, ok := commonSingleWords[strings.ToLower(keyword)]
	return ok
}
