// keywordtree extracts SEO keyword candidates from web pages and
// organizes them into a parent/child topic hierarchy.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/searchsignal/keywordtree/internal/analyze"
	"github.com/searchsignal/keywordtree/internal/extract"
	"github.com/searchsignal/keywordtree/internal/history"
)

func main() {
	app := &cli.App{
		Name:  "keywordtree",
		Usage: "Extract SEO keywords from web pages and build topic hierarchies",
		Commands: []*cli.Command{
			{
				Name:  "extract",
				Usage: "Fetch URLs and extract keyword hierarchies",
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "urls",
						Usage: "Comma-separated list of URLs to extract",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file (defaults to config.yaml when present)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent extraction workers",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Directory for per-URL result files and the run summary",
					},
					&cli.BoolFlag{
						Name:  "force-fetch",
						Usage: "Bypass the fetch cache",
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "Skip recording results in the history database",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the history database",
					},
				),
				Action: extract.Action,
			},
			{
				Name:  "analyze",
				Usage: "Extract keywords from a local HTML file",
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "file",
						Usage: "Local HTML file to analyze",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "URL the file was fetched from (used for URL signals)",
					},
				),
				Action: analyze.Action,
			},
			{
				Name:  "history",
				Usage: "List recorded extractions",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum rows to list",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "Only show extractions of this URL",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the history database",
					},
				},
				Action: history.Action,
				Subcommands: []*cli.Command{
					{
						Name:  "sessions",
						Usage: "List recorded batch sessions",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum rows to list",
							},
							&cli.StringFlag{
								Name:  "db",
								Usage: "Path to the history database",
							},
						},
						Action: history.SessionsAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// commonFlags are shared by the extract and analyze commands.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "strategy",
			Usage: "Hierarchy grouping strategy: themes or overlap",
		},
		&cli.StringFlag{
			Name:  "language",
			Usage: "ISO language hint, skips detection",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "yaml",
			Usage: "Output format: yaml or json",
		},
		&cli.StringFlag{
			Name:  "fields",
			Usage: "Comma-separated result fields to include in output",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Only log errors",
		},
	}
}
