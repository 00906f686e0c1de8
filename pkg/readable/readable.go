// Package readable extracts the main article text from raw HTML.
package readable

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// ExtractText runs the readability algorithm against the HTML and
// returns the main content as plain text. When readability fails or
// finds nothing, it falls back to stripping non-content tags from the
// full document. Empty or unparsable input yields an empty string.
func ExtractText(html, rawURL string) string {
	if parsedURL, err := url.Parse(rawURL); err == nil {
		parser := readability.NewParser()
		article, err := parser.Parse(strings.NewReader(html), parsedURL)
		if err == nil {
			if text := collapseWhitespace(article.TextContent); text != "" {
				return text
			}
		}
	}
	return fallbackText(html)
}

// fallbackText removes scripts, styles, and other non-content elements
// and returns whatever text remains.
func fallbackText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script,style,noscript,svg,iframe").Remove()
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
