// Package hierarchy assembles validated keywords into a tree rooted at
// the source URL: root, one parent-keyword child, sub-parent groups, and
// leaf keywords. Two grouping strategies are supported; the choice is a
// deployment configuration.
package hierarchy

// Node is one node of the keyword tree. A node exclusively owns its
// Children slice; trees are built fresh per extraction and nodes are
// never re-parented after attachment.
type Node struct {
	Text     string  `json:"text" yaml:"text"`
	Score    float64 `json:"score" yaml:"score"`
	Children []*Node `json:"children" yaml:"children"`

	// tokens is the derived token set used for similarity comparisons.
	// Empty for the URL root, which is never compared.
	tokens map[string]struct{}
}

func newNode(text string, score float64, tokens map[string]struct{}) *Node {
	if tokens == nil {
		tokens = map[string]struct{}{}
	}
	return &Node{
		Text:     text,
		Score:    score,
		Children: []*Node{},
		tokens:   tokens,
	}
}

// NewRoot returns a bare zero-score root node for a URL, used when no
// keywords survive extraction.
func NewRoot(url string) *Node {
	return newNode(url, 0, nil)
}

// Walk visits the node and all descendants depth-first.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Jaccard computes |A∩B| / |A∪B| for two token sets. It is 0.0 when
// either set is empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
