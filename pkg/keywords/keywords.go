// Package keywords implements the keyword pipeline stages that run
// between tokenization and tree assembly: candidate generation,
// composite scoring, quality validation, parent selection, and search
// intent classification.
package keywords

// ScoredKeyword is a candidate that survived scoring, together with the
// metrics that produced its score. Density is expressed in percent of
// the document word count.
type ScoredKeyword struct {
	Text          string  `json:"text" yaml:"text"`
	Score         float64 `json:"score" yaml:"score"`
	Freq          int     `json:"freq" yaml:"freq"`
	Density       float64 `json:"density" yaml:"density"`
	Boost         float64 `json:"boost" yaml:"boost"`
	SemanticScore float64 `json:"semantic_score" yaml:"semantic_score"`
}

// PageContext carries the prominence signals a page contributes to
// scoring and parent ranking: its title, the concatenated H1/H2 text,
// and the joined URL host+path tokens.
type PageContext struct {
	Title       string
	HeadingText string
	URLTokens   string
}
