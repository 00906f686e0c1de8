package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/searchsignal/keywordtree/pkg/caching"
	"github.com/searchsignal/keywordtree/pkg/fetcher"
	"github.com/searchsignal/keywordtree/pkg/manifest"
	"github.com/searchsignal/keywordtree/pkg/pipeline"
)

// job defines a task for a worker to perform.
type job struct {
	URL string
}

// workerPool fans extraction jobs out over a fixed number of workers.
// Each pipeline invocation is an independent unit of work; workers share
// only read-only collaborators.
type workerPool struct {
	logger    *slog.Logger
	fetcher   *fetcher.Fetcher
	cache     *caching.Cache // nil disables caching
	extractor *pipeline.Extractor
	langHint  string
	outputDir string // "" disables per-URL result files
}

// Run processes all URLs and returns one outcome per URL.
func (p *workerPool) Run(ctx context.Context, urls []string, workerCount int) []manifest.ExtractOutcome {
	var wg sync.WaitGroup
	jobs := make(chan job, len(urls))
	results := make(chan manifest.ExtractOutcome, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go p.worker(ctx, w, &wg, jobs, results)
	}

	for _, rawURL := range urls {
		jobs <- job{URL: strings.TrimSpace(rawURL)}
	}
	close(jobs)

	wg.Wait()
	close(results)

	outcomes := make([]manifest.ExtractOutcome, 0, len(urls))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// worker processes jobs from the jobs channel and sends outcomes to the
// results channel.
func (p *workerPool) worker(ctx context.Context, id int, wg *sync.WaitGroup, jobs <-chan job, results chan<- manifest.ExtractOutcome) {
	defer wg.Done()
	for j := range jobs {
		p.logger.Info("worker started job", "worker", id, "url", j.URL)
		outcome := manifest.ExtractOutcome{URL: j.URL}

		html, finalURL, err := p.getHTML(ctx, j.URL)
		if err != nil {
			p.logger.Error("fetch failed", "worker", id, "url", j.URL, "error", err)
			outcome.Error = err
			outcome.ErrorType = "fetch_error"
			results <- outcome
			continue
		}

		result, err := p.extractor.ExtractFromHTML(html, j.URL, finalURL, p.langHint)
		if err != nil {
			p.logger.Error("extraction failed", "worker", id, "url", j.URL, "error", err)
			outcome.Error = err
			outcome.ErrorType = "extract_error"
			results <- outcome
			continue
		}
		outcome.Result = result

		if p.outputDir != "" {
			path, err := p.saveResult(j.URL, result)
			if err != nil {
				p.logger.Error("failed to save result", "worker", id, "url", j.URL, "error", err)
				outcome.Error = err
				outcome.ErrorType = "save_error"
				results <- outcome
				continue
			}
			outcome.FilePath = path
		}

		results <- outcome
		p.logger.Info("worker finished job", "worker", id, "url", j.URL)
	}
}

// getHTML serves a fetch from cache when possible, fetching and caching
// otherwise.
func (p *workerPool) getHTML(ctx context.Context, rawURL string) (html, finalURL string, err error) {
	if p.cache != nil {
		if entry, ok := p.cache.Get(rawURL); ok {
			p.logger.Info("cache hit", "url", rawURL)
			return entry.HTML, entry.FinalURL, nil
		}
	}

	html, finalURL, err = p.fetcher.GetHTML(ctx, rawURL)
	if err != nil {
		return "", "", err
	}

	if p.cache != nil {
		if err := p.cache.Set(rawURL, &caching.Entry{FinalURL: finalURL, HTML: html}); err != nil {
			p.logger.Warn("failed to cache page", "url", rawURL, "error", err)
		}
	}
	return html, finalURL, nil
}

// saveResult writes one extraction result as indented JSON under the
// output directory.
func (p *workerPool) saveResult(rawURL string, result *pipeline.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(p.outputDir, savePathName(rawURL))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result: %w", err)
	}
	return path, nil
}

// savePathName generates a filesystem-friendly file name from a URL.
func savePathName(rawURL string) string {
	today := time.Now().Format("2006-01-02")

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		safe := strings.ReplaceAll(rawURL, "https://", "")
		safe = strings.ReplaceAll(safe, "http://", "")
		safe = strings.ReplaceAll(safe, "/", "_")
		return fmt.Sprintf("%s-%s.json", safe, today)
	}

	host := strings.ReplaceAll(parsedURL.Host, ".", "_")

	// Keep the path to avoid collisions between pages on one host.
	path := strings.Trim(parsedURL.Path, "/")
	path = strings.ReplaceAll(path, "/", "-")
	path = strings.ReplaceAll(path, ".", "_")

	base := host
	if path != "" {
		base = fmt.Sprintf("%s-%s", host, path)
	}
	return fmt.Sprintf("%s-%s.json", base, today)
}
