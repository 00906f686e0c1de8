// Package manifest writes the batch run summary file.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/searchsignal/keywordtree/pkg/mapreduce"
	"github.com/searchsignal/keywordtree/pkg/pipeline"
)

// aggregateLimit caps how many aggregate keywords the summary lists.
const aggregateLimit = 25

// ExtractOutcome is the per-URL outcome handed in by the batch runner.
type ExtractOutcome struct {
	URL       string
	Result    *pipeline.Result
	Error     error
	ErrorType string
	FilePath  string
}

// GenerateSummary aggregates outcomes into a RunSummary and writes it
// as YAML under outputDir. Returns the summary file path.
func GenerateSummary(outcomes []ExtractOutcome, outputDir string) (string, error) {
	var intermediate []map[string]int
	for _, outcome := range outcomes {
		if outcome.Result != nil {
			intermediate = append(intermediate, mapreduce.Map(outcome.Result))
		}
	}
	aggregate := mapreduce.Reduce(intermediate)

	summary := RunSummary{
		GeneratedAt:       time.Now().Format(time.RFC3339),
		TotalURLs:         len(outcomes),
		AggregateKeywords: mapreduce.TopKeywords(aggregate, aggregateLimit),
	}

	for _, outcome := range outcomes {
		urlSummary := URLSummary{URL: outcome.URL}

		if outcome.Error != nil {
			summary.Failed++
			urlSummary.Status = "error"
			urlSummary.ErrorType = outcome.ErrorType
			urlSummary.ErrorMessage = outcome.Error.Error()
		} else {
			summary.Successful++
			urlSummary.Status = "success"
			urlSummary.FilePath = outcome.FilePath
			if outcome.Result != nil {
				urlSummary.Language = outcome.Result.Language
				urlSummary.KeywordCount = len(outcome.Result.Keywords)
				if outcome.Result.Parent != nil {
					urlSummary.ParentKeyword = outcome.Result.Parent.Text
					urlSummary.ParentScore = outcome.Result.Parent.Score
				}
			}
		}
		summary.Results = append(summary.Results, urlSummary)
	}

	data, err := yaml.Marshal(&summary)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("summary-%s.yaml", time.Now().Format("2006-01-02")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	return path, nil
}
