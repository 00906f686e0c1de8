package pipeline

import (
	"reflect"
	"strings"
	"testing"

	"github.com/searchsignal/keywordtree/pkg/hierarchy"
)

const pageURL = "https://example.com/guides/solar-panels"

func solarPage() string {
	filler := strings.Repeat(
		"The quick brown fox jumps over the lazy dog near the river bank while birds sing in the morning light. ", 20)
	topic := strings.Repeat("Solar panel installation takes planning. ", 5)

	return `<!DOCTYPE html>
<html>
<head>
<title>Best Solar Panel Guide</title>
<meta name="description" content="A practical solar panel guide.">
</head>
<body>
<h1>Best Solar Panel Guide</h1>
<p>` + filler + `</p>
<p>` + topic + `</p>
</body>
</html>`
}

func TestExtractFromHTML_SolarPage(t *testing.T) {
	e := New(Options{})

	result, err := e.ExtractFromHTML(solarPage(), pageURL, pageURL, "en")
	if err != nil {
		t.Fatalf("ExtractFromHTML() error = %v", err)
	}

	if result.URL != pageURL {
		t.Errorf("URL = %q, want %q", result.URL, pageURL)
	}
	if result.Language != "en" {
		t.Errorf("Language = %q, want en", result.Language)
	}

	if result.Parent == nil {
		t.Fatal("Parent = nil, want the page topic")
	}
	if !strings.Contains(result.Parent.Text, " ") {
		t.Errorf("Parent = %q, want a multi-word keyword", result.Parent.Text)
	}
	if !strings.Contains(result.Parent.Text, "solar") && !strings.Contains(result.Parent.Text, "panel") {
		t.Errorf("Parent = %q, want a title-seeded topic keyword", result.Parent.Text)
	}

	if len(result.Keywords) == 0 {
		t.Fatal("Keywords empty, want extracted keywords")
	}
	if len(result.Keywords) > 30 {
		t.Errorf("len(Keywords) = %d, want <= 30", len(result.Keywords))
	}
	for _, kw := range result.Keywords {
		if kw.Score < 1.5 {
			t.Errorf("keyword %q score = %v, want >= 1.5", kw.Text, kw.Score)
		}
		if kw.Freq < 2 {
			t.Errorf("keyword %q freq = %d, want >= 2", kw.Text, kw.Freq)
		}
		if kw.Intent == "" {
			t.Errorf("keyword %q has empty intent", kw.Text)
		}
	}

	for _, child := range result.Children {
		if child.Similarity == nil {
			t.Errorf("child %q has nil similarity", child.Text)
			continue
		}
		if *child.Similarity < 0.0 || *child.Similarity > 1.0 {
			t.Errorf("child %q similarity = %v, out of [0,1]", child.Text, *child.Similarity)
		}
	}

	if result.Debug.ParentSelected == nil || *result.Debug.ParentSelected != result.Parent.Text {
		t.Errorf("Debug.ParentSelected = %v, want %q", result.Debug.ParentSelected, result.Parent.Text)
	}
	if result.Debug.TopKeywordsCount != len(result.Keywords) {
		t.Errorf("Debug.TopKeywordsCount = %d, want %d", result.Debug.TopKeywordsCount, len(result.Keywords))
	}
}

func TestExtractFromHTML_TreeContainsEveryKeyword(t *testing.T) {
	e := New(Options{})

	result, err := e.ExtractFromHTML(solarPage(), pageURL, pageURL, "en")
	if err != nil {
		t.Fatalf("ExtractFromHTML() error = %v", err)
	}
	if result.Tree == nil {
		t.Fatal("Tree = nil")
	}
	if result.Tree.Text != pageURL {
		t.Errorf("Tree root = %q, want the URL", result.Tree.Text)
	}

	inTree := make(map[string]int)
	result.Tree.Walk(func(n *hierarchy.Node) { inTree[n.Text]++ })

	for _, kw := range result.Keywords {
		if inTree[kw.Text] != 1 {
			t.Errorf("keyword %q appears %d times in tree, want 1", kw.Text, inTree[kw.Text])
		}
	}
	if inTree[result.Parent.Text] != 1 {
		t.Errorf("parent appears %d times in tree, want 1", inTree[result.Parent.Text])
	}
}

func TestExtractFromHTML_Deterministic(t *testing.T) {
	e := New(Options{})

	first, err := e.ExtractFromHTML(solarPage(), pageURL, pageURL, "en")
	if err != nil {
		t.Fatalf("first run error = %v", err)
	}
	second, err := e.ExtractFromHTML(solarPage(), pageURL, pageURL, "en")
	if err != nil {
		t.Fatalf("second run error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated extraction produced different results")
	}
}

func TestExtractFromHTML_EmptyInput(t *testing.T) {
	e := New(Options{})

	result, err := e.ExtractFromHTML("", "https://example.com", "https://example.com", "")
	if err != nil {
		t.Fatalf("ExtractFromHTML() error = %v", err)
	}

	if result.Parent != nil {
		t.Errorf("Parent = %v, want nil", result.Parent)
	}
	if len(result.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty", result.Keywords)
	}
	if len(result.Children) != 0 {
		t.Errorf("Children = %v, want empty", result.Children)
	}
	if result.Tree == nil || result.Tree.Text != "https://example.com" || len(result.Tree.Children) != 0 {
		t.Errorf("Tree = %v, want a bare URL root", result.Tree)
	}
	if result.Language != "en" {
		t.Errorf("Language = %q, want en", result.Language)
	}
	if result.Debug.ParentSelected != nil {
		t.Errorf("Debug.ParentSelected = %v, want nil", result.Debug.ParentSelected)
	}
}

func TestExtractFromHTML_FinalURLPreferred(t *testing.T) {
	e := New(Options{})

	result, err := e.ExtractFromHTML(solarPage(), "https://example.com/old", "https://example.com/new", "en")
	if err != nil {
		t.Fatalf("ExtractFromHTML() error = %v", err)
	}
	if result.URL != "https://example.com/new" {
		t.Errorf("URL = %q, want the post-redirect URL", result.URL)
	}
}
