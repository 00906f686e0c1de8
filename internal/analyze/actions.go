// Package analyze implements the analyze CLI command: run the keyword
// pipeline over a local HTML file without any network fetch.
package analyze

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/searchsignal/keywordtree/internal/common"
	"github.com/searchsignal/keywordtree/pkg/hierarchy"
	"github.com/searchsignal/keywordtree/pkg/pipeline"
)

// Action handles the analyze command.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	file := c.String("file")
	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file provided via --file")
		os.Exit(1)
	}
	pageURL := c.String("url")
	if pageURL == "" {
		fmt.Fprintln(os.Stderr, "Error: no page URL provided via --url")
		os.Exit(1)
	}

	html, err := os.ReadFile(file)
	if err != nil {
		logger.Error("failed to read input file", "path", file, "error", err)
		os.Exit(2)
	}

	extractor := pipeline.New(pipeline.Options{
		Strategy: hierarchy.Strategy(c.String("strategy")),
	})

	result, err := extractor.ExtractFromHTML(string(html), pageURL, pageURL, c.String("language"))
	if err != nil {
		logger.Error("extraction failed", "url", pageURL, "error", err)
		os.Exit(2)
	}

	filtered := common.FilterResultFields(result, c.String("fields"))

	switch c.String("format") {
	case "json":
		data, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
	default:
		data, err := yaml.Marshal(filtered)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Print(string(data))
	}
	return nil
}
