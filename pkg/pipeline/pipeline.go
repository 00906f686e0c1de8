// Package pipeline orchestrates keyword extraction end to end: content
// signals, readable text, language detection, candidate generation,
// scoring, validation, parent selection, and hierarchy assembly. The
// pipeline is stateless per call, performs no I/O, and is safe to run
// concurrently from many goroutines.
package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/searchsignal/keywordtree/pkg/hierarchy"
	"github.com/searchsignal/keywordtree/pkg/keywords"
	"github.com/searchsignal/keywordtree/pkg/language"
	"github.com/searchsignal/keywordtree/pkg/readable"
	"github.com/searchsignal/keywordtree/pkg/signals"
	"github.com/searchsignal/keywordtree/pkg/tokenizer"
)

// topKeywordLimit caps how many validated keywords are carried into the
// result.
const topKeywordLimit = 30

// Keyword is one entry of the flat result lists. Similarity is set only
// for sub-parent children, measured against the parent keyword.
type Keyword struct {
	Text       string          `json:"text" yaml:"text"`
	Score      float64         `json:"score" yaml:"score"`
	Freq       int             `json:"freq" yaml:"freq"`
	Intent     keywords.Intent `json:"intent" yaml:"intent"`
	Similarity *float64        `json:"similarity,omitempty" yaml:"similarity,omitempty"`
}

// Debug carries stage counters for troubleshooting an extraction.
type Debug struct {
	TotalCandidates   int      `json:"total_candidates" yaml:"total_candidates"`
	ScoredKeywords    int      `json:"scored_keywords" yaml:"scored_keywords"`
	ValidatedKeywords int      `json:"validated_keywords" yaml:"validated_keywords"`
	TopKeywordsCount  int      `json:"top_keywords_count" yaml:"top_keywords_count"`
	ParentSelected    *string  `json:"parent_selected" yaml:"parent_selected"`
	ParentScore       *float64 `json:"parent_score" yaml:"parent_score"`
}

// Result is the output of one extraction. A missing parent is a nil
// Parent with empty lists, not an error; errors are reserved for
// malformed input the pipeline cannot process at all.
type Result struct {
	URL      string          `json:"url" yaml:"url"`
	Language string          `json:"language" yaml:"language"`
	Parent   *Keyword        `json:"parent" yaml:"parent"`
	Children []Keyword       `json:"children" yaml:"children"`
	Tree     *hierarchy.Node `json:"tree" yaml:"tree"`
	Keywords []Keyword       `json:"keywords" yaml:"keywords"`
	Debug    Debug           `json:"debug" yaml:"debug"`
}

// Options configure an Extractor. Zero values select the defaults:
// theme bucketing, built-in themes, and the default topical vocabulary.
type Options struct {
	Strategy          hierarchy.Strategy
	Themes            []hierarchy.Theme
	TopicalVocabulary []string
}

// Extractor runs the extraction pipeline. Construct once and share; it
// holds only read-only configuration.
type Extractor struct {
	tok      *tokenizer.Tokenizer
	detector *language.Detector
	selector *keywords.ParentSelector
	builder  *hierarchy.Builder
}

// New builds an Extractor with the given options.
func New(opts Options) *Extractor {
	tok := tokenizer.New(tokenizer.DefaultModel())
	vocabulary := opts.TopicalVocabulary
	if vocabulary == nil {
		vocabulary = keywords.DefaultTopicalVocabulary
	}
	return &Extractor{
		tok:      tok,
		detector: language.Shared(),
		selector: keywords.NewParentSelector(tok, vocabulary),
		builder:  hierarchy.NewBuilder(tok, opts.Strategy, opts.Themes),
	}
}

// ExtractFromHTML extracts keywords from raw HTML and organizes them
// into a hierarchy rooted at the URL. Degraded inputs (no extractable
// text, no surviving keywords) produce a well-formed empty Result; an
// error is returned only when the HTML cannot be parsed at all.
func (e *Extractor) ExtractFromHTML(html, url, finalURL, langHint string) (*Result, error) {
	resultURL := finalURL
	if resultURL == "" {
		resultURL = url
	}

	sig, err := signals.Extract(html, resultURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract content signals: %w", err)
	}

	text := readable.ExtractText(html, url)
	lang := e.detector.Detect(text, langHint)

	// All prominent surfaces plus the body feed candidate generation
	// and frequency counting.
	allText := joinNonEmpty(
		sig.Title,
		sig.MetaDesc,
		sig.OGTitle,
		sig.OGDesc,
		sig.HeadingText(),
		text,
	)

	pc := keywords.PageContext{
		Title:       sig.Title,
		HeadingText: sig.H1H2Text(),
		URLTokens:   sig.JoinedURLTokens(),
	}

	candidates := keywords.GenerateCandidates(e.tok, allText)
	scored := keywords.Score(candidates, allText, pc)
	validated := keywords.Validate(scored)

	top := validated
	if len(top) > topKeywordLimit {
		top = top[:topKeywordLimit]
	}

	debug := Debug{
		TotalCandidates:   len(candidates),
		ScoredKeywords:    len(scored),
		ValidatedKeywords: len(validated),
		TopKeywordsCount:  len(top),
	}

	parent := e.selector.Choose(top, pc)
	var others []keywords.ScoredKeyword
	switch {
	case parent != nil:
		for _, kw := range top {
			if kw.Text != parent.Text {
				others = append(others, kw)
			}
		}
	case len(top) > 0:
		// Degraded mode: no eligible parent, promote the top keyword.
		parent = &top[0]
		others = top[1:]
	default:
		return &Result{
			URL:      resultURL,
			Language: lang,
			Parent:   nil,
			Children: []Keyword{},
			Tree:     hierarchy.NewRoot(url),
			Keywords: []Keyword{},
			Debug:    debug,
		}, nil
	}

	tree := e.builder.Build(url, *parent, others)

	parentTokens := e.tok.TokenSet(parent.Text)
	subParents := hierarchy.SubParents(tree)
	children := make([]Keyword, 0, len(subParents))
	for _, sp := range subParents {
		similarity := round3(hierarchy.Jaccard(parentTokens, e.tok.TokenSet(sp.Text)))
		children = append(children, Keyword{
			Text:       sp.Text,
			Score:      sp.Score,
			Freq:       0, // sub-parents aggregate, they have no frequency of their own
			Intent:     keywords.InferIntent(sp.Text),
			Similarity: &similarity,
		})
	}

	flat := make([]Keyword, 0, len(top))
	for _, kw := range top {
		flat = append(flat, Keyword{
			Text:   kw.Text,
			Score:  kw.Score,
			Freq:   kw.Freq,
			Intent: keywords.InferIntent(kw.Text),
		})
	}

	debug.ParentSelected = &parent.Text
	debug.ParentScore = &parent.Score

	return &Result{
		URL:      resultURL,
		Language: lang,
		Parent: &Keyword{
			Text:   parent.Text,
			Score:  parent.Score,
			Freq:   parent.Freq,
			Intent: keywords.InferIntent(parent.Text),
		},
		Children: children,
		Tree:     tree,
		Keywords: flat,
		Debug:    debug,
	}, nil
}

func joinNonEmpty(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, " ")
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
