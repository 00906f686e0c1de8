// Package history implements the history CLI command over the stored
// extraction database.
package history

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/searchsignal/keywordtree/pkg/db"
)

// Action lists recorded extractions, newest first.
func Action(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	limit := c.Int("limit")

	var extractions []dbpkg.Extraction
	if targetURL := c.String("url"); targetURL != "" {
		extractions, err = database.GetByURL(targetURL, limit)
	} else {
		extractions, err = database.ListRecent(limit)
	}
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(extractions) == 0 {
		fmt.Println("No extractions found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-8s %-30s %s\n",
		"ID", "Created", "Lang", "Count", "Parent", "URL")
	fmt.Println(strings.Repeat("-", 110))

	for _, e := range extractions {
		parent := e.ParentKeyword
		if parent == "" {
			parent = "-"
		}
		fmt.Printf("%-6d %-20s %-8s %-8d %-30s %s\n",
			e.ExtractionID,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.Language,
			e.KeywordCount,
			truncate(parent, 30),
			e.URL,
		)
	}

	fmt.Printf("\nTotal: %d extractions\n", len(extractions))
	return nil
}

// SessionsAction lists recorded batch sessions.
func SessionsAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	sessions, err := database.ListSessions(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-8s %-8s %s\n",
		"ID", "Created", "URLs", "Success", "Failed", "Strategy")
	fmt.Println(strings.Repeat("-", 70))

	for _, s := range sessions {
		strategy := s.Strategy
		if strategy == "" {
			strategy = "themes"
		}
		fmt.Printf("%-6d %-20s %-8d %-8d %-8d %s\n",
			s.SessionID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.URLCount,
			s.SuccessCount,
			s.FailedCount,
			strategy,
		)
	}

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	return nil
}

func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	if dbPath := c.String("db"); dbPath != "" {
		return dbpkg.OpenAt(dbPath)
	}
	return dbpkg.Open()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
