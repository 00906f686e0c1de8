package manifest

import (
	"errors"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/searchsignal/keywordtree/pkg/pipeline"
)

func TestGenerateSummary(t *testing.T) {
	outcomes := []ExtractOutcome{
		{
			URL: "https://example.com/solar",
			Result: &pipeline.Result{
				URL:      "https://example.com/solar",
				Language: "en",
				Parent:   &pipeline.Keyword{Text: "solar panel installation", Score: 8.2},
				Keywords: []pipeline.Keyword{
					{Text: "solar panel installation", Freq: 5},
					{Text: "battery storage", Freq: 3},
				},
			},
			FilePath: "out/example-com-solar.json",
		},
		{
			URL:       "https://example.com/broken",
			Error:     errors.New("connection refused"),
			ErrorType: "fetch_error",
		},
	}

	path, err := GenerateSummary(outcomes, t.TempDir())
	if err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}

	var summary RunSummary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		t.Fatalf("parse summary: %v", err)
	}

	if summary.TotalURLs != 2 {
		t.Errorf("TotalURLs = %d, want 2", summary.TotalURLs)
	}
	if summary.Successful != 1 || summary.Failed != 1 {
		t.Errorf("counts = %d/%d, want 1/1", summary.Successful, summary.Failed)
	}
	if len(summary.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(summary.Results))
	}

	ok := summary.Results[0]
	if ok.Status != "success" || ok.ParentKeyword != "solar panel installation" || ok.KeywordCount != 2 {
		t.Errorf("success row = %+v", ok)
	}

	failed := summary.Results[1]
	if failed.Status != "error" || failed.ErrorType != "fetch_error" {
		t.Errorf("error row = %+v", failed)
	}

	if len(summary.AggregateKeywords) == 0 {
		t.Error("AggregateKeywords empty, want aggregated counts")
	}
	if summary.AggregateKeywords[0] != "solar panel installation:5" {
		t.Errorf("AggregateKeywords[0] = %q", summary.AggregateKeywords[0])
	}
}

func TestGenerateSummary_NoOutcomes(t *testing.T) {
	path, err := GenerateSummary(nil, t.TempDir())
	if err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("summary file missing: %v", err)
	}
}
