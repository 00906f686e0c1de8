// Package extract implements the extract CLI command: fetch pages,
// run the keyword pipeline over a worker pool, and report results.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/searchsignal/keywordtree/internal/common"
	"github.com/searchsignal/keywordtree/models"
	"github.com/searchsignal/keywordtree/pkg/caching"
	"github.com/searchsignal/keywordtree/pkg/db"
	"github.com/searchsignal/keywordtree/pkg/fetcher"
	"github.com/searchsignal/keywordtree/pkg/hierarchy"
	"github.com/searchsignal/keywordtree/pkg/manifest"
	"github.com/searchsignal/keywordtree/pkg/pipeline"
)

// Action handles the extract command.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := loadConfig(c, logger)

	urls := config.URLs
	if c.IsSet("urls") {
		urls = strings.Split(c.String("urls"), ",")
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no URLs provided (use --urls or a config file)")
		os.Exit(1)
	}

	strategy := config.HierarchyStrategy
	if c.IsSet("strategy") {
		strategy = c.String("strategy")
	}
	if strategy != "" && strategy != string(hierarchy.StrategyThemes) && strategy != string(hierarchy.StrategyOverlap) {
		fmt.Fprintf(os.Stderr, "Error: unknown hierarchy strategy %q (use themes or overlap)\n", strategy)
		os.Exit(1)
	}

	langHint := config.LanguageHint
	if c.IsSet("language") {
		langHint = c.String("language")
	}

	extractor := pipeline.New(pipeline.Options{
		Strategy:          hierarchy.Strategy(strategy),
		TopicalVocabulary: config.TopicalVocabulary,
	})

	var cache *caching.Cache
	if !c.Bool("force-fetch") {
		cacheDir := config.CacheDir
		if cacheDir == "" {
			cacheDir = ".cache"
		}
		var err error
		cache, err = caching.NewCache(cacheDir, config.CacheMaxAge())
		if err != nil {
			logger.Warn("failed to initialize cache, fetching live", "error", err)
			cache = nil
		}
	}

	workerCount := config.Workers()
	if c.IsSet("workers") {
		workerCount = c.Int("workers")
	}

	pool := &workerPool{
		logger:    logger,
		fetcher:   fetcher.New(),
		cache:     cache,
		extractor: extractor,
		langHint:  langHint,
		outputDir: c.String("output-dir"),
	}

	logger.Info("starting extraction", "urls", len(urls), "workers", workerCount, "strategy", strategy)
	outcomes := pool.Run(context.Background(), urls, workerCount)

	success, failed := 0, 0
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			failed++
		} else {
			success++
		}
	}

	if !c.Bool("no-history") {
		if err := recordHistory(c.String("db"), urls, strategy, outcomes, success, failed); err != nil {
			logger.Warn("failed to record history", "error", err)
		}
	}

	if outputDir := c.String("output-dir"); outputDir != "" {
		path, err := manifest.GenerateSummary(outcomes, outputDir)
		if err != nil {
			logger.Error("failed to generate run summary", "error", err)
		} else {
			logger.Info("run summary written", "path", path)
		}
	}

	if err := printResults(c, outcomes); err != nil {
		return err
	}

	logger.Info("extraction complete",
		"success", success,
		"failed", failed,
		"duration", time.Since(startTime).String(),
	)
	if failed > 0 && success == 0 {
		os.Exit(2)
	}
	return nil
}

// loadConfig reads the YAML config when present; flags override it
// later. A missing default config file is not an error.
func loadConfig(c *cli.Context, logger *slog.Logger) *models.Config {
	path := c.String("config")
	explicit := c.IsSet("config")
	if path == "" {
		path = "config.yaml"
	}

	config, err := models.LoadConfig(path)
	if err != nil {
		if explicit {
			logger.Error("failed to load config", "path", path, "error", err)
			os.Exit(2)
		}
		return &models.Config{}
	}
	return config
}

// recordHistory persists the run and its per-URL results.
func recordHistory(dbPath string, urls []string, strategy string, outcomes []manifest.ExtractOutcome, success, failed int) error {
	var database *db.DB
	var err error
	if dbPath != "" {
		database, err = db.OpenAt(dbPath)
	} else {
		database, err = db.Open()
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	sessionID, err := database.CreateSession(urls, strategy)
	if err != nil {
		return err
	}
	for _, outcome := range outcomes {
		if outcome.Result == nil {
			continue
		}
		if _, err := database.SaveExtraction(sessionID, outcome.URL, outcome.Result); err != nil {
			return err
		}
	}
	return database.FinishSession(sessionID, success, failed)
}

// printResults writes extraction results to stdout in the requested
// format, optionally projected down to --fields.
func printResults(c *cli.Context, outcomes []manifest.ExtractOutcome) error {
	fields := c.String("fields")

	output := make([]map[string]interface{}, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			output = append(output, map[string]interface{}{
				"url":   outcome.URL,
				"error": outcome.Error.Error(),
			})
			continue
		}
		output = append(output, common.FilterResultFields(outcome.Result, fields))
	}

	switch c.String("format") {
	case "json":
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
	default:
		data, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Print(string(data))
	}
	return nil
}
