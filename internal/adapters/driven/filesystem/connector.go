// Package filesystem provides a corpus connector backed by a local directory.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.CorpusConnector = (*Connector)(nil)

// MaxReadSize is the maximum size for loaded file content (5MB).
const MaxReadSize = 5 * 1024 * 1024

// defaultMIMEType is used when the extension gives no better answer.
const defaultMIMEType = "text/plain"

// Connector lists and reads documents from a directory tree. Document
// IDs are paths relative to the root, so a re-index of the same tree
// yields stable IDs.
type Connector struct {
	rootPath string
}

// New creates a filesystem connector rooted at the given directory.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// ListFiles walks the tree under folderRef (relative to the root, empty
// for the whole root) and returns text files sorted by path. Hidden
// files and directories are skipped.
func (c *Connector) ListFiles(ctx context.Context, folderRef string) ([]domain.FileDescriptor, error) {
	base := c.rootPath
	if folderRef != "" {
		base = filepath.Join(c.rootPath, folderRef)
	}

	var files []domain.FileDescriptor
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") && path != base {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		mimeType := detectMIMEType(path)
		if mimeType == "" {
			return nil
		}

		rel, err := filepath.Rel(c.rootPath, path)
		if err != nil {
			return err
		}

		files = append(files, domain.FileDescriptor{
			ID:       filepath.ToSlash(rel),
			Name:     name,
			MIMEType: mimeType,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filesystem: list files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}

// ReadDocument reads a file's content, capped at MaxReadSize.
func (c *Connector) ReadDocument(ctx context.Context, id, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(c.rootPath, filepath.FromSlash(id))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("filesystem: %w: %s", domain.ErrNotFound, id)
		}
		return "", fmt.Errorf("filesystem: open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxReadSize))
	if err != nil {
		return "", fmt.Errorf("filesystem: read file: %w", err)
	}

	return string(data), nil
}

// Validate checks that the root directory exists and is readable.
func (c *Connector) Validate(_ context.Context) error {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return fmt.Errorf("filesystem: validate: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("filesystem: %s is not a directory", c.rootPath)
	}
	return nil
}

// Close releases resources.
func (c *Connector) Close() error {
	return nil
}

// detectMIMEType maps a file extension to a text MIME type. Returns
// empty for extensions that are unlikely to hold text.
func detectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", ".markdown", ".rst", ".log":
		return defaultMIMEType
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".xml":
		return "application/xml"
	case ".yaml", ".yml":
		return "application/x-yaml"
	case ".html", ".htm":
		return "text/html"
	}

	if t := mime.TypeByExtension(ext); strings.HasPrefix(t, "text/") {
		// Strip charset parameters added by the mime package.
		if i := strings.Index(t, ";"); i >= 0 {
			t = t[:i]
		}
		return t
	}

	return ""
}
