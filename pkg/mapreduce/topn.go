package mapreduce

import (
	"fmt"
	"sort"
)

// TopKeywords returns the top N keywords from aggregated counts as
// "keyword:count" strings, sorted by count descending. Ties sort by
// keyword text so repeated runs produce identical output.
func TopKeywords(counts map[string]int, n int) []string {
	type kv struct {
		Keyword string
		Count   int
	}

	sorted := make([]kv, 0, len(counts))
	for k, v := range counts {
		sorted = append(sorted, kv{k, v})
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Keyword < sorted[j].Keyword
	})

	limit := n
	if len(sorted) < n {
		limit = len(sorted)
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", sorted[i].Keyword, sorted[i].Count)
	}
	return keywords
}
