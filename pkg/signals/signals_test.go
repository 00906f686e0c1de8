package signals

import (
	"reflect"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>
  Solar Panel
  Buying Guide
</title>
<meta name="description" content=" Compare panels before you buy. ">
<meta property="og:title" content="Solar Panel Buying Guide">
<meta property="og:description" content="Everything about rooftop solar.">
</head>
<body>
<h1>Choosing Solar Panels</h1>
<h2>Panel Efficiency</h2>
<h3>Monocrystalline Cells</h3>
<h2></h2>
</body>
</html>`

func TestExtract(t *testing.T) {
	got, err := Extract(samplePage, "https://www.example.com/guides/solar-panels")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if got.Title != "Solar Panel Buying Guide" {
		t.Errorf("Title = %q, want %q", got.Title, "Solar Panel Buying Guide")
	}
	if got.MetaDesc != "Compare panels before you buy." {
		t.Errorf("MetaDesc = %q, want trimmed content", got.MetaDesc)
	}
	if got.OGTitle != "Solar Panel Buying Guide" {
		t.Errorf("OGTitle = %q", got.OGTitle)
	}
	if got.OGDesc != "Everything about rooftop solar." {
		t.Errorf("OGDesc = %q", got.OGDesc)
	}

	wantHeadings := []Heading{
		{Level: "h1", Text: "Choosing Solar Panels"},
		{Level: "h2", Text: "Panel Efficiency"},
		{Level: "h3", Text: "Monocrystalline Cells"},
	}
	if !reflect.DeepEqual(got.Headings, wantHeadings) {
		t.Errorf("Headings = %v, want %v", got.Headings, wantHeadings)
	}

	wantTokens := []string{"example", "com", "guides", "solar-panels"}
	if !reflect.DeepEqual(got.URLTokens, wantTokens) {
		t.Errorf("URLTokens = %v, want %v", got.URLTokens, wantTokens)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	got, err := Extract("", "https://example.com")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got.Title != "" {
		t.Errorf("Title = %q, want empty", got.Title)
	}
	if len(got.Headings) != 0 {
		t.Errorf("Headings = %v, want none", got.Headings)
	}
}

func TestURLTokens(t *testing.T) {
	tests := []struct {
		rawURL string
		want   []string
	}{
		{"https://www.example.com/blog/solar-tips", []string{"example", "com", "blog", "solar-tips"}},
		{"https://docs.example.org/", []string{"docs", "example", "org"}},
		{"https://example.com", []string{"example", "com"}},
	}

	for _, tt := range tests {
		if got := URLTokens(tt.rawURL); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("URLTokens(%q) = %v, want %v", tt.rawURL, got, tt.want)
		}
	}
}

func TestHeadingTextJoins(t *testing.T) {
	s := &ContentSignals{Headings: []Heading{
		{Level: "h1", Text: "Choosing Solar Panels"},
		{Level: "h2", Text: "Panel Efficiency"},
		{Level: "h3", Text: "Monocrystalline Cells"},
	}}

	if got := s.HeadingText(); got != "Choosing Solar Panels Panel Efficiency Monocrystalline Cells" {
		t.Errorf("HeadingText() = %q", got)
	}
	if got := s.H1H2Text(); got != "Choosing Solar Panels Panel Efficiency" {
		t.Errorf("H1H2Text() = %q", got)
	}
}
