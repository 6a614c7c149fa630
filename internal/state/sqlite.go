package state

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps the tracker state in a SQLite database instead of a JSON
// file. Same contract as FileStore: Load never fails on bad content.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath and ensures the
// schema exists.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS postings (
			id         TEXT PRIMARY KEY,
			company    TEXT NOT NULL,
			title      TEXT NOT NULL,
			location   TEXT NOT NULL,
			url        TEXT NOT NULL,
			source     TEXT NOT NULL,
			first_seen TEXT NOT NULL,
			posted_at  TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS custom_sources (
			name TEXT PRIMARY KEY,
			url  TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Load reads the full state. Row-level problems are logged and skipped so a
// damaged row cannot take the whole run down.
func (s *SQLiteStore) Load() (*TrackerState, error) {
	st := NewTrackerState()

	rows, err := s.db.Query(
		`SELECT id, company, title, location, url, source, first_seen, posted_at FROM postings`)
	if err != nil {
		s.logger.Warn("reading postings failed, starting fresh", "error", err)
		return NewTrackerState(), nil
	}
	defer rows.Close()

	for rows.Next() {
		var p model.Posting
		var firstSeen string
		var postedAt sql.NullString
		if err := rows.Scan(&p.ID, &p.Company, &p.Title, &p.Location, &p.URL, &p.Source, &firstSeen, &postedAt); err != nil {
			s.logger.Warn("skipping unreadable posting row", "error", err)
			continue
		}
		if t, err := time.Parse(time.RFC3339, firstSeen); err == nil {
			p.FirstSeen = t
		}
		if postedAt.Valid {
			if t, err := time.Parse(time.RFC3339, postedAt.String); err == nil {
				p.PostedAt = &t
			}
		}
		st.Postings[p.ID] = p
	}

	var lastChecked string
	err = s.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_checked'`).Scan(&lastChecked)
	if err == nil {
		if t, perr := time.Parse(time.RFC3339, lastChecked); perr == nil {
			st.LastChecked = t
		}
	}

	srcRows, err := s.db.Query(`SELECT name, url FROM custom_sources`)
	if err == nil {
		defer srcRows.Close()
		for srcRows.Next() {
			var name, url string
			if err := srcRows.Scan(&name, &url); err == nil {
				st.CustomSources[name] = url
			}
		}
	}

	return st, nil
}

// Save replaces the stored snapshot with st inside one transaction.
func (s *SQLiteStore) Save(st *TrackerState) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range st.Postings {
		var postedAt any
		if p.PostedAt != nil {
			postedAt = p.PostedAt.Format(time.RFC3339)
		}
		_, err := tx.Exec(
			`INSERT INTO postings (id, company, title, location, url, source, first_seen, posted_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   company = excluded.company, title = excluded.title,
			   location = excluded.location, url = excluded.url,
			   source = excluded.source, first_seen = excluded.first_seen,
			   posted_at = excluded.posted_at`,
			p.ID, p.Company, p.Title, p.Location, p.URL, p.Source,
			p.FirstSeen.Format(time.RFC3339), postedAt,
		)
		if err != nil {
			return fmt.Errorf("upserting posting %s: %w", p.ID, err)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO meta (key, value) VALUES ('last_checked', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		st.LastChecked.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving last_checked: %w", err)
	}

	for name, url := range st.CustomSources {
		_, err := tx.Exec(
			`INSERT INTO custom_sources (name, url) VALUES (?, ?)
			 ON CONFLICT(name) DO UPDATE SET url = excluded.url`,
			name, url,
		)
		if err != nil {
			return fmt.Errorf("saving custom source %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
