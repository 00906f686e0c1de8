package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Sessions: one batch extraction run over a set of URLs
CREATE TABLE IF NOT EXISTS sessions (
    session_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    url_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    strategy TEXT,

    -- Hash of the sorted URL set, for spotting repeat runs
    url_hash TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at);
CREATE INDEX IF NOT EXISTS idx_sessions_hash ON sessions(url_hash);

-- Extractions: one row per extracted URL
CREATE TABLE IF NOT EXISTS extractions (
    extraction_id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id INTEGER,
    url TEXT NOT NULL,
    final_url TEXT,
    language TEXT,
    parent_keyword TEXT,
    parent_score REAL,
    keyword_count INTEGER NOT NULL DEFAULT 0,

    -- Full extraction result as JSON for replay and inspection
    result_json TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_extractions_session ON extractions(session_id);
CREATE INDEX IF NOT EXISTS idx_extractions_url ON extractions(url);
CREATE INDEX IF NOT EXISTS idx_extractions_created ON extractions(created_at);
`

// InitSchema creates all tables and indexes.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}
