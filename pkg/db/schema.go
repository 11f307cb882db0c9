package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs: one row per analysis invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    target TEXT NOT NULL,
    is_subreddit BOOLEAN NOT NULL,
    period TEXT NOT NULL,
    item_limit INTEGER NOT NULL,
    max_threshold REAL NOT NULL,
    count_word_freqs BOOLEAN NOT NULL DEFAULT 1,
    item_count INTEGER DEFAULT 0,
    skipped_count INTEGER DEFAULT 0,
    distinct_words INTEGER DEFAULT 0,
    output_file TEXT,
    duration_ms INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_target ON runs(target);

-- Run skips: content items a run could not fetch and walked past
CREATE TABLE IF NOT EXISTS run_skips (
    skip_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    permalink TEXT NOT NULL,
    status_code INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_skips_run ON run_skips(run_id);
`
