// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists produced article results in a SQLite database with
// an FTS5 index, so past runs can be listed and searched from the CLI.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/kb-dojo/pkg/types"
)

const dbFile = "kbdojo.db"

// Record is one stored article result.
type Record struct {
	ID       int64     `json:"id" yaml:"id"`
	RunID    string    `json:"run_id" yaml:"run_id"`
	Title    string    `json:"title" yaml:"title"`
	Language string    `json:"language" yaml:"language"`
	Text     string    `json:"text" yaml:"text"`
	DocPath  string    `json:"doc_path,omitempty" yaml:"doc_path,omitempty"`
	Created  time.Time `json:"created" yaml:"created"`
}

// Store manages the results SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the results database at cfg.IndexDir/kbdojo.db,
// creating the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			title TEXT NOT NULL,
			language TEXT NOT NULL,
			text TEXT NOT NULL,
			doc_path TEXT,
			created TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run_id ON results(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='results_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE results_fts USING fts5(title, text, content=results, content_rowid=id)`,
			`CREATE TRIGGER results_ai AFTER INSERT ON results BEGIN
				INSERT INTO results_fts(rowid, title, text) VALUES (new.id, new.title, new.text);
			END`,
			`CREATE TRIGGER results_ad AFTER DELETE ON results BEGIN
				INSERT INTO results_fts(results_fts, rowid, title, text) VALUES('delete', old.id, old.title, old.text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Save records one produced result. docPath is the exported document's path,
// or empty when export failed.
func (s *Store) Save(ctx context.Context, runID string, r types.Result, docPath string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (run_id, title, language, text, doc_path, created)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, r.Title, r.Language, r.Text, docPath,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting result %s (%s): %w", r.Title, r.Language, err)
	}
	return nil
}

// List returns the most recent records, newest first, limited by the
// configured maximum. Text is omitted; use Get for the full record.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, title, language, doc_path, created
		 FROM results ORDER BY id DESC LIMIT ?`, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Search runs an FTS5 full-text query over stored titles and article text.
func (s *Store) Search(ctx context.Context, query string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.run_id, r.title, r.language, r.doc_path, r.created
		 FROM results_fts
		 JOIN results r ON r.id = results_fts.rowid
		 WHERE results_fts MATCH ?
		 ORDER BY rank LIMIT ?`, query, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching results: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Get returns the full record, including article text, for one result ID.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	var docPath sql.NullString
	var created string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, run_id, title, language, text, doc_path, created
		 FROM results WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.RunID, &rec.Title, &rec.Language, &rec.Text, &docPath, &created)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("result %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading result %d: %w", id, err)
	}

	rec.DocPath = docPath.String
	rec.Created, _ = time.Parse(time.RFC3339, created)
	return &rec, nil
}

// scanRecords reads rows produced by List or Search (no text column).
func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var rec Record
		var docPath sql.NullString
		var created string
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Title, &rec.Language, &docPath, &created); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		rec.DocPath = docPath.String
		rec.Created, _ = time.Parse(time.RFC3339, created)
		records = append(records, rec)
	}
	return records, rows.Err()
}
