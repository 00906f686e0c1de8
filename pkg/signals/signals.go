// Package signals extracts page metadata used as prominence signals:
// title, meta and Open Graph descriptions, headings, and URL tokens.
package signals

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is one heading element with its level tag ("h1".."h6").
type Heading struct {
	Level string `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// ContentSignals is a read-only snapshot of page metadata, produced once
// per extraction and not retained.
type ContentSignals struct {
	Title     string    `json:"title" yaml:"title"`
	MetaDesc  string    `json:"meta_desc" yaml:"meta_desc"`
	OGTitle   string    `json:"og_title" yaml:"og_title"`
	OGDesc    string    `json:"og_desc" yaml:"og_desc"`
	Headings  []Heading `json:"headings" yaml:"headings"`
	URLTokens []string  `json:"url_tokens" yaml:"url_tokens"`
}

// Extract parses raw HTML and the page URL into a ContentSignals
// snapshot.
func Extract(html, rawURL string) (*ContentSignals, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	s := &ContentSignals{
		Title:     normalizeText(doc.Find("title").First().Text()),
		URLTokens: URLTokens(rawURL),
	}

	if content, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		s.MetaDesc = strings.TrimSpace(content)
	}
	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		s.OGTitle = strings.TrimSpace(content)
	}
	if content, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		s.OGDesc = strings.TrimSpace(content)
	}

	for _, tag := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		doc.Find(tag).Each(func(i int, sel *goquery.Selection) {
			text := normalizeText(sel.Text())
			if text != "" {
				s.Headings = append(s.Headings, Heading{Level: tag, Text: text})
			}
		})
	}

	return s, nil
}

// URLTokens splits a URL into host tokens (minus "www" and empty parts)
// followed by path segments.
func URLTokens(rawURL string) []string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	var tokens []string
	for _, part := range strings.Split(parsed.Hostname(), ".") {
		if part != "" && part != "www" {
			tokens = append(tokens, part)
		}
	}
	for _, part := range strings.Split(parsed.Path, "/") {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// HeadingText joins all heading text in document order.
func (s *ContentSignals) HeadingText() string {
	parts := make([]string, 0, len(s.Headings))
	for _, h := range s.Headings {
		parts = append(parts, h.Text)
	}
	return strings.Join(parts, " ")
}

// H1H2Text joins the text of H1 and H2 headings only, the prominence
// signal used by the scorer.
func (s *ContentSignals) H1H2Text() string {
	var parts []string
	for _, h := range s.Headings {
		if h.Level == "h1" || h.Level == "h2" {
			parts = append(parts, h.Text)
		}
	}
	return strings.Join(parts, " ")
}

// JoinedURLTokens joins the URL tokens with spaces for substring checks.
func (s *ContentSignals) JoinedURLTokens() string {
	return strings.Join(s.URLTokens, " ")
}

// normalizeText collapses a string to single-space-separated lines with
// surrounding whitespace trimmed.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
