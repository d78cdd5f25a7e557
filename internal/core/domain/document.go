package domain

// FileDescriptor identifies a document in the remote corpus before any
// content has been fetched. Produced by a corpus connector's listing.
type FileDescriptor struct {
	// ID is the connector-assigned identifier (Drive file ID, path, etc).
	ID string

	// Name is the human-readable file name.
	Name string

	// MIMEType is the reported content type, used to pick an extraction
	// strategy when reading the document.
	MIMEType string
}

// DocumentMetadata is the lightweight per-document record held in the
// catalogue. Created once during indexing; only FullyLoaded and
// LoadError change afterwards, flipped by the content loader.
type DocumentMetadata struct {
	// ID is the unique identifier within the catalogue.
	ID string

	// Name is the human-readable document name.
	Name string

	// MIMEType is carried from the file descriptor.
	MIMEType string

	// Preview is the first part of the document text, capped at the
	// configured preview length. Used for lexical scoring and for the
	// model-assisted ranking prompt.
	Preview string

	// FullyLoaded is true once the full content has been fetched.
	FullyLoaded bool

	// LoadError holds the last content-fetch failure message, if any.
	LoadError string
}

// DocumentContent is the full text of a document. Created on first
// fetch and never mutated; cached for the lifetime of the session.
type DocumentContent struct {
	// ID matches the DocumentMetadata ID.
	ID string

	// Name is the human-readable document name.
	Name string

	// MIMEType is the content type the text was extracted as.
	MIMEType string

	// Content is the full extracted text.
	Content string
}

// TruncateText shortens s to at most max runes. Used for previews and
// for the per-document context cap. Rune-based so multi-byte text is
// never cut mid-character.
func TruncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
