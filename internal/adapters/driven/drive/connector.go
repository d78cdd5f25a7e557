// Package drive provides a corpus connector backed by Google Drive.
package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.CorpusConnector = (*Connector)(nil)

// Google Workspace MIME types that can be exported.
const (
	MimeTypeGoogleDoc    = "application/vnd.google-apps.document"
	MimeTypeGoogleSheet  = "application/vnd.google-apps.spreadsheet"
	MimeTypeGoogleSlides = "application/vnd.google-apps.presentation"
	MimeTypeFolder       = "application/vnd.google-apps.folder"
)

// Export formats for Google Workspace files.
const (
	ExportMimeText = "text/plain"
	ExportMimeCSV  = "text/csv"
)

// MaxDownloadSize is the maximum size for downloaded content (5MB).
const MaxDownloadSize = 5 * 1024 * 1024

// listPageSize is the Drive files.list page size.
const listPageSize = 100

// Default rate limits. Google allows 10 requests per second per user;
// stay below that to leave headroom for other clients.
const (
	defaultRequestsPerSecond = 8.0
	defaultBurstSize         = 10
)

// Config holds configuration for the Drive connector.
type Config struct {
	// TokenSource provides OAuth2 tokens for the Drive API (required).
	TokenSource oauth2.TokenSource

	// RequestsPerSecond overrides the sustained API rate limit.
	RequestsPerSecond float64

	// BurstSize overrides the rate limiter burst size.
	BurstSize int
}

// Connector lists and reads documents from a Google Drive folder.
type Connector struct {
	svc     *drive.Service
	limiter *rate.Limiter
}

// NewConnector creates a Drive connector using the provided token source.
func NewConnector(ctx context.Context, cfg Config) (*Connector, error) {
	if cfg.TokenSource == nil {
		return nil, fmt.Errorf("drive: token source is required")
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = defaultBurstSize
	}

	svc, err := drive.NewService(ctx, option.WithTokenSource(cfg.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("drive: create service: %w", err)
	}

	return &Connector{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}, nil
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "gdrive"
}

// ListFiles enumerates the files in a folder, in the order Drive returns
// them. Subfolders and trashed files are skipped. An empty folderRef
// lists the user's whole corpus.
func (c *Connector) ListFiles(ctx context.Context, folderRef string) ([]domain.FileDescriptor, error) {
	query := "trashed = false"
	if folderRef != "" {
		query = fmt.Sprintf("'%s' in parents and trashed = false", folderRef)
	}

	var files []domain.FileDescriptor
	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := c.svc.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)").
			PageSize(listPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, wrapError("list files", err)
		}

		for _, f := range page.Files {
			if f.MimeType == MimeTypeFolder {
				continue
			}
			files = append(files, domain.FileDescriptor{
				ID:       f.Id,
				Name:     f.Name,
				MIMEType: f.MimeType,
			})
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return files, nil
}

// ReadDocument fetches the text content of a file. Google Workspace
// files are exported to a text format; regular files are downloaded
// directly, capped at MaxDownloadSize.
func (c *Connector) ReadDocument(ctx context.Context, id, mimeType string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	switch mimeType {
	case MimeTypeGoogleDoc, MimeTypeGoogleSlides:
		return c.export(ctx, id, ExportMimeText)
	case MimeTypeGoogleSheet:
		return c.export(ctx, id, ExportMimeCSV)
	}

	resp, err := c.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return "", wrapError("download file", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize))
	if err != nil {
		return "", wrapError("read file content", err)
	}

	return string(data), nil
}

// export converts a Google Workspace file to the specified format.
func (c *Connector) export(ctx context.Context, id, exportMime string) (string, error) {
	resp, err := c.svc.Files.Export(id, exportMime).Context(ctx).Download()
	if err != nil {
		return "", wrapError("export file", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize))
	if err != nil {
		return "", wrapError("read export", err)
	}

	return string(data), nil
}

// Validate checks connectivity and credentials with a lightweight
// About call.
func (c *Connector) Validate(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := c.svc.About.Get().Fields("user").Context(ctx).Do(); err != nil {
		return wrapError("validate", err)
	}
	return nil
}

// Close releases resources.
func (c *Connector) Close() error {
	return nil
}

// IsTextFile reports whether a MIME type is likely text content.
func IsTextFile(mimeType string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}

	switch mimeType {
	case "application/json",
		"application/xml",
		"application/javascript",
		"application/x-yaml",
		"application/sql":
		return true
	}

	return false
}
