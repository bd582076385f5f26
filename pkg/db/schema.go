package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per flatten/ngrams invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    command TEXT NOT NULL,           -- flatten, ngrams
    input TEXT NOT NULL,             -- root directory or corpus file
    output TEXT,                     -- CSV path; empty for stdout
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    status TEXT NOT NULL DEFAULT 'running',  -- running, success, error
    item_count INTEGER DEFAULT 0,    -- rows written or lines read
    error_type TEXT,
    error_message TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_command ON runs(command);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);

-- Per-item detail: input file + transaction id, or corpus line + language
CREATE TABLE IF NOT EXISTS run_items (
    item_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    value TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_items_run ON run_items(run_id);
`
