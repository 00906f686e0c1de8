package readable

import (
	"strings"
	"testing"
)

func TestExtractText_StripsNonContent(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head>
<body>
<script>var tracker = "noise";</script>
<p>Solar panels convert sunlight into electricity using photovoltaic cells.
They are most effective on south facing rooftops with minimal shading.</p>
<noscript>enable javascript</noscript>
</body></html>`

	got := ExtractText(html, "https://example.com/solar")

	if !strings.Contains(got, "photovoltaic cells") {
		t.Errorf("text missing article content: %q", got)
	}
	if strings.Contains(got, "tracker") {
		t.Errorf("script content leaked into text: %q", got)
	}
	if strings.Contains(got, "color: red") {
		t.Errorf("style content leaked into text: %q", got)
	}
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	html := "<html><body><p>solar\n\n   panel\t\tguide</p></body></html>"

	got := ExtractText(html, "https://example.com")
	if strings.Contains(got, "  ") || strings.Contains(got, "\n") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestExtractText_Empty(t *testing.T) {
	if got := ExtractText("", "https://example.com"); got != "" {
		t.Errorf("ExtractText(\"\") = %q, want empty", got)
	}
}
