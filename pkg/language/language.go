// Package language detects the document language for extraction
// results.
package language

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// detectSampleRunes bounds how much text is fed to the detector; the
// opening of a document is enough to identify its language.
const detectSampleRunes = 1000

// Detector wraps a lingua language detector built once per process.
type Detector struct {
	inner lingua.LanguageDetector
}

var (
	sharedOnce sync.Once
	shared     *Detector
)

// Shared returns the process-wide detector, building it on first use.
// The model covers the languages commonly seen on the pages this tool
// targets.
func Shared() *Detector {
	sharedOnce.Do(func() {
		shared = &Detector{
			inner: lingua.NewLanguageDetectorBuilder().
				FromLanguages(
					lingua.English,
					lingua.Spanish,
					lingua.French,
					lingua.German,
					lingua.Portuguese,
					lingua.Italian,
					lingua.Dutch,
					lingua.Hindi,
					lingua.Japanese,
					lingua.Chinese,
				).
				Build(),
		}
	})
	return shared
}

// Detect returns the ISO 639-1 code for the text's language. A non-empty
// hint short-circuits detection; unidentifiable text defaults to "en".
func (d *Detector) Detect(text, hint string) string {
	if hint != "" {
		return strings.ToLower(hint)
	}

	runes := []rune(text)
	if len(runes) > detectSampleRunes {
		runes = runes[:detectSampleRunes]
	}
	sample := strings.TrimSpace(string(runes))
	if sample == "" {
		return "en"
	}

	lang, ok := d.inner.DetectLanguageOf(sample)
	if !ok {
		return "en"
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
