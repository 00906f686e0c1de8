package manifest

// RunSummary is the YAML summary written after a batch extraction run.
// It gives a one-file overview of every URL, its parent keyword, and the
// aggregate top keywords without opening the per-URL results.
type RunSummary struct {
	GeneratedAt       string       `yaml:"generated_at"`
	TotalURLs         int          `yaml:"total_urls"`
	Successful        int          `yaml:"successful"`
	Failed            int          `yaml:"failed"`
	AggregateKeywords []string     `yaml:"aggregate_keywords"`
	Results           []URLSummary `yaml:"results"`
}

// URLSummary is the per-URL line of the run summary.
type URLSummary struct {
	URL           string  `yaml:"url"`
	Status        string  `yaml:"status"` // "success" or "error"
	ErrorType     string  `yaml:"error_type,omitempty"`
	ErrorMessage  string  `yaml:"error_message,omitempty"`
	Language      string  `yaml:"language,omitempty"`
	ParentKeyword string  `yaml:"parent_keyword,omitempty"`
	ParentScore   float64 `yaml:"parent_score,omitempty"`
	KeywordCount  int     `yaml:"keyword_count,omitempty"`
	FilePath      string  `yaml:"file_path,omitempty"`
}
