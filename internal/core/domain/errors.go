package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateDocument indicates a catalogue already contains the ID.
	ErrDuplicateDocument = errors.New("duplicate document")

	// ErrCatalogueFull indicates the ingestion hard limit was reached.
	ErrCatalogueFull = errors.New("catalogue full")

	// ErrEmptyCatalogue indicates indexing produced no usable documents.
	// This is the only indexing failure that propagates to the caller.
	ErrEmptyCatalogue = errors.New("no documents could be indexed")

	// ErrLLMUnavailable indicates no answering model is configured.
	// Callers should surface this as an instruction to configure a
	// provider, not as a crash.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrIndexInProgress indicates an indexing run is already active.
	// Overlapping runs are not supported.
	ErrIndexInProgress = errors.New("indexing already in progress")

	// Answering-call failures. LLM adapters wrap transport and API
	// errors into these so the caller can classify the cause.

	// ErrAuthFailed indicates invalid or expired API credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrNetworkFailure indicates a transport-level failure.
	ErrNetworkFailure = errors.New("network failure")
)
