package hierarchy

import (
	"sort"
	"strings"

	"github.com/searchsignal/keywordtree/pkg/keywords"
	"github.com/searchsignal/keywordtree/pkg/tokenizer"
)

// Strategy selects how remaining keywords are grouped under the parent.
type Strategy string

const (
	// StrategyThemes buckets keywords by topical trigger sets; leftovers
	// become singleton sub-parents.
	StrategyThemes Strategy = "themes"
	// StrategyOverlap attaches each keyword to the deepest tree node
	// whose token set subsumes, overlaps, or is Jaccard-similar to it.
	StrategyOverlap Strategy = "overlap"
)

// minAttachSimilarity is the Jaccard threshold for overlap attachment.
const minAttachSimilarity = 0.3

// Builder assembles keyword trees using one configured strategy.
type Builder struct {
	tok      *tokenizer.Tokenizer
	strategy Strategy
	themes   []Theme
}

// NewBuilder returns a Builder. An empty strategy defaults to theme
// bucketing; nil themes default to DefaultThemes.
func NewBuilder(tok *tokenizer.Tokenizer, strategy Strategy, themes []Theme) *Builder {
	if strategy == "" {
		strategy = StrategyThemes
	}
	if themes == nil {
		themes = DefaultThemes
	}
	return &Builder{tok: tok, strategy: strategy, themes: themes}
}

// Build assembles the tree for one extraction: a zero-score root for the
// URL, the parent keyword as its only child, and the remaining keywords
// grouped under the parent by the configured strategy. Every keyword in
// others appears in the result exactly once.
func (b *Builder) Build(url string, parent keywords.ScoredKeyword, others []keywords.ScoredKeyword) *Node {
	root := newNode(url, 0, nil)
	parentNode := b.node(parent.Text, parent.Score)

	switch b.strategy {
	case StrategyOverlap:
		b.attachByOverlap(parentNode, others)
	default:
		parentNode.Children = b.themeSubParents(others)
	}

	root.Children = append(root.Children, parentNode)
	return root
}

// SubParents exposes the direct children of the parent node, which the
// caller reports as second-level groupings with similarity scores.
func SubParents(root *Node) []*Node {
	if len(root.Children) == 0 {
		return nil
	}
	return root.Children[0].Children
}

// themeSubParents groups keywords into ordered theme buckets. The
// highest-scoring keyword in a bucket becomes the sub-parent and the
// rest become its children; keywords matching no theme become singleton
// sub-parents.
func (b *Builder) themeSubParents(others []keywords.ScoredKeyword) []*Node {
	sorted := make([]keywords.ScoredKeyword, len(others))
	copy(sorted, others)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Text < sorted[j].Text
	})

	used := make(map[string]struct{}, len(sorted))
	var subParents []*Node

	for _, theme := range b.themes {
		var bucket []keywords.ScoredKeyword
		for _, kw := range sorted {
			if _, taken := used[kw.Text]; taken {
				continue
			}
			if containsAnyTrigger(kw.Text, theme.Triggers) {
				bucket = append(bucket, kw)
				used[kw.Text] = struct{}{}
			}
		}
		if len(bucket) == 0 {
			continue
		}
		subParent := b.node(bucket[0].Text, bucket[0].Score)
		for _, kw := range bucket[1:] {
			subParent.Children = append(subParent.Children, b.node(kw.Text, kw.Score))
		}
		subParents = append(subParents, subParent)
	}

	for _, kw := range sorted {
		if _, taken := used[kw.Text]; !taken {
			subParents = append(subParents, b.node(kw.Text, kw.Score))
		}
	}
	return subParents
}

// attachByOverlap walks keywords most-specific first and hangs each on
// the deepest node it relates to; unrelated keywords become direct
// children of the parent so nothing is dropped.
func (b *Builder) attachByOverlap(parentNode *Node, others []keywords.ScoredKeyword) {
	sorted := make([]keywords.ScoredKeyword, len(others))
	copy(sorted, others)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := len(b.tok.Tokenize(sorted[i].Text)), len(b.tok.Tokenize(sorted[j].Text))
		if ti != tj {
			return ti > tj
		}
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Text < sorted[j].Text
	})

	for _, kw := range sorted {
		node := b.node(kw.Text, kw.Score)
		if !attachToBestParent(parentNode, node) {
			parentNode.Children = append(parentNode.Children, node)
		}
	}
}

// attachToBestParent finds the deepest, most specific node the
// candidate should hang under and attaches it there.
func attachToBestParent(root, candidate *Node) bool {
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{root, 1}}
	var bestParent *Node
	bestDepth := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if shouldBeChild(f.node.tokens, candidate.tokens) && f.depth >= bestDepth {
			bestParent = f.node
			bestDepth = f.depth
		}
		for _, child := range f.node.Children {
			stack = append(stack, frame{child, f.depth + 1})
		}
	}

	if bestParent == nil {
		return false
	}
	bestParent.Children = append(bestParent.Children, candidate)
	return true
}

// shouldBeChild decides whether candidate tokens belong under parent
// tokens: subset containment is the strongest signal, any overlap is
// accepted, and Jaccard similarity is the fallback.
func shouldBeChild(parentTokens, childTokens map[string]struct{}) bool {
	if len(parentTokens) > 0 && isSubset(parentTokens, childTokens) {
		return true
	}
	if len(parentTokens) > 0 && len(childTokens) > 0 && intersects(parentTokens, childTokens) {
		return true
	}
	return Jaccard(parentTokens, childTokens) >= minAttachSimilarity
}

func (b *Builder) node(text string, score float64) *Node {
	return newNode(text, score, b.tok.TokenSet(text))
}

func containsAnyTrigger(text string, triggers []string) bool {
	lower := strings.ToLower(text)
	for _, trigger := range triggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

func isSubset(a, b map[string]struct{}) bool {
	for t := range a {
		if _, ok := b[t]; !ok {
			return false
		}
	}
	return true
}

func intersects(a, b map[string]struct{}) bool {
	for t := range a {
		if _, ok := b[t]; ok {
			return true
		}
	}
	return false
}
