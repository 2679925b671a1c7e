package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle. The pool is capped at one connection so writes
// serialize and ":memory:" databases behave as a single shared store in tests.
type DB struct {
	*sql.DB
}

func NewSQLiteDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure sqlite database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	role          TEXT NOT NULL,
	active        INTEGER NOT NULL DEFAULT 1,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS employees (
	id         INTEGER PRIMARY KEY,
	last_name  TEXT NOT NULL,
	first_name TEXT NOT NULL,
	department TEXT NOT NULL,
	entry_time TEXT NOT NULL,
	exit_time  TEXT NOT NULL,
	active     INTEGER NOT NULL DEFAULT 1,
	shift      TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS punches (
	id          INTEGER PRIMARY KEY,
	employee_id INTEGER NOT NULL,
	last_name   TEXT NOT NULL,
	first_name  TEXT NOT NULL,
	department  TEXT NOT NULL,
	kind        TEXT NOT NULL,
	time        TEXT,
	date        TEXT NOT NULL,
	status      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_punches_employee_date ON punches (employee_id, date);
CREATE INDEX IF NOT EXISTS idx_punches_date ON punches (date);

CREATE TABLE IF NOT EXISTS lateness_events (
	id               INTEGER PRIMARY KEY,
	employee_id      INTEGER NOT NULL,
	last_name        TEXT NOT NULL,
	first_name       TEXT NOT NULL,
	department       TEXT NOT NULL,
	arrival_time     TEXT NOT NULL,
	scheduled_time   TEXT NOT NULL,
	lateness_minutes INTEGER NOT NULL,
	lateness_display TEXT NOT NULL,
	date             TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lateness_date ON lateness_events (date);

CREATE TABLE IF NOT EXISTS absences (
	id            INTEGER PRIMARY KEY,
	employee_id   INTEGER NOT NULL,
	last_name     TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	department    TEXT NOT NULL,
	date          TEXT NOT NULL,
	type          TEXT NOT NULL,
	justification TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS settings (
	id                         INTEGER PRIMARY KEY CHECK (id = 1),
	default_entry_time         TEXT NOT NULL,
	default_exit_time          TEXT NOT NULL,
	lateness_threshold_minutes INTEGER NOT NULL
);

INSERT OR IGNORE INTO settings (id, default_entry_time, default_exit_time, lateness_threshold_minutes)
VALUES (1, '08:00', '17:00', 15);
`

func migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
