package keywords

import (
	"testing"

	"github.com/searchsignal/keywordtree/pkg/tokenizer"
)

func newTestSelector() *ParentSelector {
	return NewParentSelector(tokenizer.New(tokenizer.DefaultModel()), nil)
}

func TestChoose_NeverSingleWord(t *testing.T) {
	s := newTestSelector()
	scored := []ScoredKeyword{
		{Text: "solar", Score: 12.0, Freq: 8},
		{Text: "solar panel", Score: 3.0, Freq: 3},
	}

	got := s.Choose(scored, PageContext{})
	if got == nil {
		t.Fatal("Choose() = nil, want a parent")
	}
	if got.Text != "solar panel" {
		t.Errorf("parent = %q, want %q", got.Text, "solar panel")
	}
}

func TestChoose_NilWhenOnlySingleWords(t *testing.T) {
	s := newTestSelector()
	scored := []ScoredKeyword{
		{Text: "solar", Score: 12.0, Freq: 8},
		{Text: "inverter", Score: 5.0, Freq: 4},
	}

	if got := s.Choose(scored, PageContext{}); got != nil {
		t.Errorf("Choose() = %v, want nil", got)
	}
}

func TestChoose_RejectsBoilerplateOnly(t *testing.T) {
	s := newTestSelector()
	scored := []ScoredKeyword{
		{Text: "privacy policy", Score: 9.0, Freq: 6},
		{Text: "contact support", Score: 7.0, Freq: 5},
	}

	if got := s.Choose(scored, PageContext{}); got != nil {
		t.Errorf("Choose() = %v, want nil", got)
	}
}

func TestChoose_RejectsGenericOnly(t *testing.T) {
	s := newTestSelector()
	scored := []ScoredKeyword{
		{Text: "industry overview", Score: 6.0, Freq: 4},
	}

	if got := s.Choose(scored, PageContext{}); got != nil {
		t.Errorf("Choose() = %v, want nil", got)
	}
}

func TestChoose_PrefersTitleSeededCandidate(t *testing.T) {
	s := newTestSelector()
	scored := []ScoredKeyword{
		{Text: "battery storage", Score: 9.5, Freq: 7},
		{Text: "solar panel installation", Score: 6.0, Freq: 4},
	}
	pc := PageContext{Title: "Solar Panel Installation Basics"}

	got := s.Choose(scored, pc)
	if got == nil {
		t.Fatal("Choose() = nil, want a parent")
	}
	if got.Text != "solar panel installation" {
		t.Errorf("parent = %q, want %q", got.Text, "solar panel installation")
	}
}

func TestChoose_Empty(t *testing.T) {
	s := newTestSelector()
	if got := s.Choose(nil, PageContext{}); got != nil {
		t.Errorf("Choose(nil) = %v, want nil", got)
	}
}

func TestChoose_TopicalBoostBreaksRanking(t *testing.T) {
	plain := NewParentSelector(tokenizer.New(tokenizer.DefaultModel()), nil)
	topical := NewParentSelector(tokenizer.New(tokenizer.DefaultModel()), []string{"inverter"})

	// Identical scores; only the topical vocabulary separates them.
	scored := []ScoredKeyword{
		{Text: "garden lighting", Score: 5.0, Freq: 4},
		{Text: "inverter sizing", Score: 5.0, Freq: 4},
	}

	got := topical.Choose(scored, PageContext{})
	if got == nil {
		t.Fatal("Choose() = nil, want a parent")
	}
	if got.Text != "inverter sizing" {
		t.Errorf("topical parent = %q, want %q", got.Text, "inverter sizing")
	}

	if got := plain.Choose(scored, PageContext{}); got == nil {
		t.Fatal("Choose() = nil, want a parent")
	}
}

func TestParentSemanticQuality(t *testing.T) {
	tests := []struct {
		keyword string
		want    float64
	}{
		{"solar panel", 1.0},
		{"best solar comparison", 2.0},
	}

	for _, tt := range tests {
		got := ParentSemanticQuality(tt.keyword)
		if diff := got - tt.want; diff > 0.0001 || diff < -0.0001 {
			t.Errorf("ParentSemanticQuality(%q) = %v, want %v", tt.keyword, got, tt.want)
		}
	}
}

func TestParentSemanticQuality_Floor(t *testing.T) {
	// The parent variant never drops below 0.5 regardless of how many
	// function words a phrase carries.
	if got := ParentSemanticQuality("of the and for"); got < 0.5 {
		t.Errorf("ParentSemanticQuality = %v, want >= 0.5", got)
	}
}
