package domain

import (
	"errors"
	"fmt"
)

// SourceRef identifies a document that contributed to an answer.
type SourceRef struct {
	// ID is the document identifier.
	ID string

	// Name is the human-readable document name.
	Name string

	// Truncated is true if the document's content was cut to fit the
	// context budget.
	Truncated bool
}

// Answer is the result of an end-to-end query.
type Answer struct {
	// Query is the original user question.
	Query string

	// Text is the model's answer. Empty when NoMatches is true.
	Text string

	// Method records how the source documents were selected.
	Method SelectionMethod

	// Sources lists the documents handed to the answering model,
	// in ranking order.
	Sources []SourceRef

	// NoMatches is true when the query was valid but no relevant
	// documents were found. Distinct from an error so callers can
	// message the user accordingly.
	NoMatches bool
}

// FailureCause classifies an answering-call failure.
type FailureCause int

const (
	// FailureUnknown is the default for unclassified failures.
	FailureUnknown FailureCause = iota

	// FailureAuth indicates invalid or expired credentials.
	FailureAuth

	// FailureRateLimited indicates the provider throttled the call.
	FailureRateLimited

	// FailureNetwork indicates a transport-level failure.
	FailureNetwork
)

// String returns the cause name for logs and CLI output.
func (c FailureCause) String() string {
	switch c {
	case FailureAuth:
		return "auth"
	case FailureRateLimited:
		return "rate-limit"
	case FailureNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// AnswerError wraps an answering-call failure with its classified
// cause. The answering call has no local fallback, so this is the one
// pipeline failure that propagates to the caller.
type AnswerError struct {
	Cause FailureCause
	Err   error
}

// Error implements the error interface.
func (e *AnswerError) Error() string {
	return fmt.Sprintf("answer call failed (%s): %v", e.Cause, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *AnswerError) Unwrap() error {
	return e.Err
}

// NewAnswerError classifies err and wraps it. Classification is based
// on the domain sentinels that LLM adapters wrap into their errors.
func NewAnswerError(err error) *AnswerError {
	return &AnswerError{Cause: ClassifyFailure(err), Err: err}
}

// ClassifyFailure maps an error to a FailureCause.
func ClassifyFailure(err error) FailureCause {
	switch {
	case errors.Is(err, ErrAuthFailed):
		return FailureAuth
	case errors.Is(err, ErrRateLimited):
		return FailureRateLimited
	case errors.Is(err, ErrNetworkFailure):
		return FailureNetwork
	default:
		return FailureUnknown
	}
}
