package keywords

import (
	"reflect"
	"testing"

	"github.com/searchsignal/keywordtree/pkg/tokenizer"
)

func TestGenerateCandidates_Ngrams(t *testing.T) {
	tok := tokenizer.New(tokenizer.DefaultModel())

	got := GenerateCandidates(tok, "solar panel installation")
	want := []string{
		"solar",
		"solar panel",
		"solar panel installation",
		"panel",
		"panel installation",
		"installation",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateCandidates() = %v, want %v", got, want)
	}
}

func TestGenerateCandidates_FirstOccurrenceOrder(t *testing.T) {
	tok := tokenizer.New(tokenizer.DefaultModel())
	text := "battery storage solar battery storage"

	first := GenerateCandidates(tok, text)
	second := GenerateCandidates(tok, text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated call = %v, want %v", second, first)
	}
	seen := make(map[string]int)
	for _, c := range first {
		seen[c]++
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("candidate %q appears %d times, want 1", c, n)
		}
	}
}

func TestGenerateCandidates_LowValueSingleWords(t *testing.T) {
	tok := tokenizer.New(tokenizer.DefaultModel())

	got := GenerateCandidates(tok, "page website online")
	for _, c := range got {
		switch c {
		case "page", "website", "online":
			t.Errorf("low-value single word %q survived", c)
		}
	}
}

func TestGenerateCandidates_Empty(t *testing.T) {
	tok := tokenizer.New(tokenizer.DefaultModel())

	if got := GenerateCandidates(tok, ""); len(got) != 0 {
		t.Errorf("GenerateCandidates(\"\") = %v, want empty", got)
	}
}
