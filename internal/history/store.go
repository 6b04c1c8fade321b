// Package history records page visits in a SQLite database and serves
// URL-bar suggestions from them.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const currentSchemaVersion = 1

// DefaultFileName is the history database file name inside the data directory.
const DefaultFileName = "history.db"

// Visit is one remembered page.
type Visit struct {
	URL         string
	Title       string
	VisitCount  int
	LastVisited time.Time
}

// Store is a SQLite-backed visit history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (and if needed creates) the history database at the given
// path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table missing or empty, start fresh.
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return fmt.Errorf("migrate history schema: %w", err)
		}
	}
	return nil
}

func (s *Store) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS visits (
			url TEXT PRIMARY KEY NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			visit_count INTEGER NOT NULL DEFAULT 0,
			last_visited TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_visits_last_visited ON visits(last_visited);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordVisit upserts a visit for the URL, bumping the counter and the
// last-visited timestamp. Empty and about: URLs are ignored.
func (s *Store) RecordVisit(url, title string) error {
	url = strings.TrimSpace(url)
	if url == "" || strings.HasPrefix(url, "about:") {
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO visits (url, title, visit_count, last_visited)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = CASE WHEN excluded.title != '' THEN excluded.title ELSE visits.title END,
			visit_count = visits.visit_count + 1,
			last_visited = excluded.last_visited
	`, url, title, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Search returns up to limit visits whose URL or title contains the term,
// most visited and most recent first.
func (s *Store) Search(term string, limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + strings.TrimSpace(term) + "%"

	rows, err := s.db.Query(`
		SELECT url, title, visit_count, last_visited
		FROM visits
		WHERE url LIKE ? OR title LIKE ?
		ORDER BY visit_count DESC, last_visited DESC
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search history: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// Recent returns up to limit visits, most recent first.
func (s *Store) Recent(limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT url, title, visit_count, last_visited
		FROM visits
		ORDER BY last_visited DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

func scanVisits(rows *sql.Rows) ([]Visit, error) {
	var out []Visit
	for rows.Next() {
		var v Visit
		var lastVisited string
		if err := rows.Scan(&v.URL, &v.Title, &v.VisitCount, &lastVisited); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339, lastVisited); err == nil {
			v.LastVisited = ts
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
