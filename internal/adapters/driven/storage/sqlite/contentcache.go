// Package sqlite provides a persistent content cache backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
)

// Ensure ContentCache implements the interface.
var _ driven.ContentCache = (*ContentCache)(nil)

// schema is the content cache table. Entries are immutable per document
// ID, so there is no updated_at column.
const schema = `
CREATE TABLE IF NOT EXISTS document_content (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	mime_type  TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)
`

// ContentCache stores loaded document content across process restarts.
type ContentCache struct {
	db   *sql.DB
	path string
}

// NewContentCache opens (or creates) a content cache at the specified
// data directory. If dataDir is empty, defaults to ~/.docq/data.
func NewContentCache(dataDir string) (*ContentCache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docq", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "content.db")

	// WAL mode for better concurrency during parallel loads.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating content table: %w", err)
	}

	return &ContentCache{db: db, path: dbPath}, nil
}

// Get returns the cached content for a document ID, or
// domain.ErrNotFound when the cache has no entry.
func (c *ContentCache) Get(ctx context.Context, id string) (*domain.DocumentContent, error) {
	row := c.db.QueryRowContext(ctx,
		"SELECT id, name, mime_type, content FROM document_content WHERE id = ?", id)

	var content domain.DocumentContent
	err := row.Scan(&content.ID, &content.Name, &content.MIMEType, &content.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("content cache: %w: %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("content cache: get: %w", err)
	}

	return &content, nil
}

// Put stores document content. Existing entries are left untouched so
// the first loaded version of a document stays stable for the session.
func (c *ContentCache) Put(ctx context.Context, content domain.DocumentContent) error {
	_, err := c.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO document_content (id, name, mime_type, content) VALUES (?, ?, ?, ?)",
		content.ID, content.Name, content.MIMEType, content.Content)
	if err != nil {
		return fmt.Errorf("content cache: put: %w", err)
	}
	return nil
}

// Len returns the number of cached documents.
func (c *ContentCache) Len(ctx context.Context) (int, error) {
	var n int
	row := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM document_content")
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("content cache: count: %w", err)
	}
	return n, nil
}

// Path returns the database file path.
func (c *ContentCache) Path() string {
	return c.path
}

// Close closes the database connection.
func (c *ContentCache) Close() error {
	return c.db.Close()
}
