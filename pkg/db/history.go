package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/searchsignal/keywordtree/internal/common"
	"github.com/searchsignal/keywordtree/pkg/pipeline"
)

// Session represents one batch extraction run.
type Session struct {
	SessionID    int64
	CreatedAt    time.Time
	URLCount     int
	SuccessCount int
	FailedCount  int
	Strategy     string
}

// Extraction is one stored extraction result.
type Extraction struct {
	ExtractionID  int64
	SessionID     int64
	URL           string
	FinalURL      string
	Language      string
	ParentKeyword string
	ParentScore   float64
	KeywordCount  int
	ResultJSON    string
	CreatedAt     time.Time
}

// Result decodes the stored result JSON.
func (e *Extraction) Result() (*pipeline.Result, error) {
	var result pipeline.Result
	if err := json.Unmarshal([]byte(e.ResultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}
	return &result, nil
}

// CreateSession records the start of a batch run over a URL set.
func (db *DB) CreateSession(urls []string, strategy string) (int64, error) {
	sorted := make([]string, len(urls))
	copy(sorted, urls)
	sort.Strings(sorted)
	urlHash := common.ContentHash([]byte(strings.Join(sorted, "\n")))

	result, err := db.Exec(`
		INSERT INTO sessions (url_count, strategy, url_hash)
		VALUES (?, ?, ?)
	`, len(urls), strategy, urlHash)
	if err != nil {
		return 0, fmt.Errorf("failed to create session: %w", err)
	}

	sessionID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get session ID: %w", err)
	}
	return sessionID, nil
}

// FinishSession records the batch outcome counts.
func (db *DB) FinishSession(sessionID int64, success, failed int) error {
	_, err := db.Exec(`
		UPDATE sessions SET success_count = ?, failed_count = ?
		WHERE session_id = ?
	`, success, failed, sessionID)
	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}
	return nil
}

// GetSession loads one session by ID.
func (db *DB) GetSession(sessionID int64) (*Session, error) {
	var s Session
	err := db.QueryRow(`
		SELECT session_id, created_at, url_count, success_count, failed_count, COALESCE(strategy, '')
		FROM sessions WHERE session_id = ?
	`, sessionID).Scan(&s.SessionID, &s.CreatedAt, &s.URLCount, &s.SuccessCount, &s.FailedCount, &s.Strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// ListSessions returns the newest sessions, most recent first.
func (db *DB) ListSessions(limit int) ([]Session, error) {
	rows, err := db.Query(`
		SELECT session_id, created_at, url_count, success_count, failed_count, COALESCE(strategy, '')
		FROM sessions
		ORDER BY created_at DESC, session_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.SessionID, &s.CreatedAt, &s.URLCount, &s.SuccessCount, &s.FailedCount, &s.Strategy); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

// SaveExtraction stores one extraction result under a session. A
// sessionID of zero stores the row without a session link.
func (db *DB) SaveExtraction(sessionID int64, originalURL string, result *pipeline.Result) (int64, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to encode result: %w", err)
	}

	var parentKeyword sql.NullString
	var parentScore sql.NullFloat64
	if result.Parent != nil {
		parentKeyword = sql.NullString{String: result.Parent.Text, Valid: true}
		parentScore = sql.NullFloat64{Float64: result.Parent.Score, Valid: true}
	}

	var session sql.NullInt64
	if sessionID > 0 {
		session = sql.NullInt64{Int64: sessionID, Valid: true}
	}

	res, err := db.Exec(`
		INSERT INTO extractions (session_id, url, final_url, language, parent_keyword, parent_score, keyword_count, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, session, originalURL, result.URL, result.Language, parentKeyword, parentScore, len(result.Keywords), string(resultJSON))
	if err != nil {
		return 0, fmt.Errorf("failed to save extraction: %w", err)
	}

	extractionID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get extraction ID: %w", err)
	}
	return extractionID, nil
}

// ListRecent returns the newest extractions, most recent first.
func (db *DB) ListRecent(limit int) ([]Extraction, error) {
	rows, err := db.Query(`
		SELECT extraction_id, COALESCE(session_id, 0), url, COALESCE(final_url, ''),
		       COALESCE(language, ''), COALESCE(parent_keyword, ''), COALESCE(parent_score, 0),
		       keyword_count, result_json, created_at
		FROM extractions
		ORDER BY created_at DESC, extraction_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	defer rows.Close()

	return scanExtractions(rows)
}

// GetByURL returns stored extractions for one URL, most recent first.
func (db *DB) GetByURL(url string, limit int) ([]Extraction, error) {
	rows, err := db.Query(`
		SELECT extraction_id, COALESCE(session_id, 0), url, COALESCE(final_url, ''),
		       COALESCE(language, ''), COALESCE(parent_keyword, ''), COALESCE(parent_score, 0),
		       keyword_count, result_json, created_at
		FROM extractions
		WHERE url = ?
		ORDER BY created_at DESC, extraction_id DESC
		LIMIT ?
	`, url, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get extractions by URL: %w", err)
	}
	defer rows.Close()

	return scanExtractions(rows)
}

func scanExtractions(rows *sql.Rows) ([]Extraction, error) {
	var extractions []Extraction
	for rows.Next() {
		var e Extraction
		if err := rows.Scan(
			&e.ExtractionID, &e.SessionID, &e.URL, &e.FinalURL,
			&e.Language, &e.ParentKeyword, &e.ParentScore,
			&e.KeywordCount, &e.ResultJSON, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", err)
		}
		extractions = append(extractions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate extractions: %w", err)
	}
	return extractions, nil
}
