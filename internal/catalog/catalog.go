// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists booklet build history in a SQLite database.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/scanpress/pkg/types"
)

const dbFile = "catalog.db"

// defaultListLimit bounds catalog list queries.
const defaultListLimit = 50

// Store manages the build catalog database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database under dir, creating the schema
// if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS builds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			author TEXT,
			pages INTEGER NOT NULL,
			source_dir TEXT NOT NULL,
			cbz_path TEXT,
			pdf_path TEXT,
			archive_dpi INTEGER,
			pdf_dpi INTEGER,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_builds_title ON builds(title)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one build row.
func (s *Store) Record(rec types.BuildRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO builds (title, author, pages, source_dir, cbz_path, pdf_path, archive_dpi, pdf_dpi, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Title, rec.Author, rec.Pages, rec.SourceDir,
		rec.CBZPath, rec.PDFPath, rec.ArchiveDPI, rec.PDFDPI,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording build %q: %w", rec.Title, err)
	}
	return nil
}

// List returns the most recent builds, newest first. limit <= 0 uses the
// default.
func (s *Store) List(limit int) ([]types.BuildRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.Query(
		`SELECT title, author, pages, source_dir, cbz_path, pdf_path, archive_dpi, pdf_dpi, created_at
		 FROM builds ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing builds: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Show returns all builds for a title, newest first.
func (s *Store) Show(title string) ([]types.BuildRecord, error) {
	rows, err := s.db.Query(
		`SELECT title, author, pages, source_dir, cbz_path, pdf_path, archive_dpi, pdf_dpi, created_at
		 FROM builds WHERE title = ? ORDER BY id DESC`, title)
	if err != nil {
		return nil, fmt.Errorf("querying builds for %q: %w", title, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]types.BuildRecord, error) {
	var recs []types.BuildRecord
	for rows.Next() {
		var rec types.BuildRecord
		var created string
		if err := rows.Scan(
			&rec.Title, &rec.Author, &rec.Pages, &rec.SourceDir,
			&rec.CBZPath, &rec.PDFPath, &rec.ArchiveDPI, &rec.PDFDPI, &created,
		); err != nil {
			return nil, fmt.Errorf("scanning build row: %w", err)
		}
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", created, err)
		}
		rec.CreatedAt = t
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
