package common

import "testing"

func TestFilterResultFields(t *testing.T) {
	type sample struct {
		URL      string `json:"url"`
		Language string `json:"language"`
		Score    int    `json:"score"`
	}
	in := sample{URL: "https://example.com", Language: "en", Score: 7}

	got := FilterResultFields(in, "url, score")
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2: %v", len(got), got)
	}
	if got["url"] != "https://example.com" {
		t.Errorf("url = %v", got["url"])
	}
	if _, ok := got["language"]; ok {
		t.Error("language present, want filtered out")
	}
}

func TestFilterResultFields_EmptySelectsAll(t *testing.T) {
	type sample struct {
		URL      string `json:"url"`
		Language string `json:"language"`
	}

	got := FilterResultFields(sample{URL: "a", Language: "b"}, "")
	if len(got) != 2 {
		t.Errorf("len(got) = %d, want 2", len(got))
	}
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("solar panel"))
	b := ContentHash([]byte("solar panel"))
	c := ContentHash([]byte("battery storage"))

	if a != b {
		t.Errorf("same input hashed differently: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different inputs produced the same hash")
	}
	if len(a) != 64 {
		t.Errorf("len(hash) = %d, want 64 hex chars", len(a))
	}
}
