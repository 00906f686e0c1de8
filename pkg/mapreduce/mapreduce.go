// Package mapreduce aggregates keyword frequencies across the results
// of a batch extraction run.
package mapreduce

import "github.com/searchsignal/keywordtree/pkg/pipeline"

// Map generates a keyword frequency map for a single extraction result.
func Map(result *pipeline.Result) map[string]int {
	counts := make(map[string]int, len(result.Keywords))
	for _, kw := range result.Keywords {
		counts[kw.Text] += kw.Freq
	}
	return counts
}

// Reduce aggregates a slice of keyword frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for keyword, count := range counts {
			finalResults[keyword] += count
		}
	}

	return finalResults
}
